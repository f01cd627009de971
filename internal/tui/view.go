package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/joeldevian/myday-rutinas/internal/timer"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateRoutines:
		content = docStyle.Render(m.routinesModel.View())
	case StateGoals:
		content = docStyle.Render(m.goalsModel.View())
	case StateMissions:
		content = docStyle.Render(m.missionsModel.View())
	case StateStats:
		content = m.viewStats()
	case StateTimer:
		content = m.viewTimer()
	case StateForm:
		content = m.form.View()
	case StateConfirmDelete:
		content = m.viewConfirmDelete()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		m.help.View(m.keys),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	tabTitles := []string{"Routines", "Goals", "Missions", "Stats", "Timer"}
	active := m.state
	if active == StateForm || active == StateConfirmDelete {
		active = m.previousState
	}
	for i, title := range tabTitles {
		if active == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewStats() string {
	var b strings.Builder

	routineList, err := m.deps.Routines.All()
	if err != nil {
		routineList = nil
	}

	b.WriteString(titleStyle.Render("Last 7 days"))
	b.WriteString("\n")
	for _, row := range m.deps.Recorder.LastNDays(7, routineList) {
		label := row.DayName
		if row.IsToday {
			label = "Hoy"
		}
		b.WriteString(fmt.Sprintf("  %-4s %s %3d%%  %s\n",
			label,
			m.statsBar.ViewAs(float64(row.Percentage)/100),
			row.Percentage,
			faintStyle.Render(fmt.Sprintf("%d/%d", row.Completed, row.Total))))
	}

	if ws, err := m.deps.Goals.Stats(); err == nil && ws.TotalGoals > 0 {
		b.WriteString(fmt.Sprintf("\n  Week: %d/%d checkboxes (%d%%)\n",
			ws.CompletedCheckboxes, ws.TotalCheckboxes, ws.Percentage))
	}
	if ms, err := m.deps.Missions.Stats(); err == nil {
		b.WriteString(fmt.Sprintf("  %s %d: %d/%d missions (%d%%)\n",
			ms.MonthName, ms.Year, ms.Completed, ms.Total, ms.Percentage))
	}

	tally := m.deps.Runner.Tally()
	if tally.Total() > 0 {
		b.WriteString(fmt.Sprintf("\n  Merit: %d leyenda, %d elite, %d novato\n",
			tally.Leyenda, tally.Elite, tally.Novato))
	}

	return docStyle.Render(b.String())
}

func (m Model) viewTimer() string {
	var state string
	switch m.countdown.State() {
	case timer.StateIdle:
		state = "press c to set a countdown"
	case timer.StateConfigured:
		state = "ready, press s to start"
	case timer.StateRunning:
		state = "running"
	case timer.StatePaused:
		state = "paused"
	case timer.StateFinished:
		state = dangerStyle.Render("time's up!")
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render(fmt.Sprintf("Now: %02d:%02d", m.now.Hour(), m.now.Minute())),
		clockStyle.Render(timer.FormatClock(m.countdown.Remaining())),
		state,
		"",
		m.statsBar.ViewAs(m.countdown.Progress()),
		"",
		faintStyle.Render("[c] configure  [s] start/pause  [r] reset"),
	)

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height-4, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

func (m Model) viewConfirmDelete() string {
	var what string
	switch m.deleteKind {
	case deleteRoutine:
		what = "routine"
	case deleteGoal:
		what = "goal"
	case deleteMission:
		what = "mission"
	}
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(fmt.Sprintf("Are you sure you want to delete this %s?", what)),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
