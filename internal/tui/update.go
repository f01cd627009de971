package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/joeldevian/myday-rutinas/internal/constants"
	"github.com/joeldevian/myday-rutinas/internal/models"
	"github.com/joeldevian/myday-rutinas/internal/repo"
	"github.com/joeldevian/myday-rutinas/internal/timer"
	"github.com/joeldevian/myday-rutinas/internal/tui/components/goals"
	"github.com/joeldevian/myday-rutinas/internal/tui/components/missions"
	"github.com/joeldevian/myday-rutinas/internal/tui/components/routines"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case TickMsg:
		m.now = m.deps.Clock.Now()
		if m.countdown.State() == timer.StateRunning {
			m.countdown.Tick()
		}
		// Per-minute reset evaluation; catches midnight while the TUI is open.
		minute := m.now.Format(constants.DateFormat + " " + constants.TimeFormat)
		if minute != m.lastMinute {
			m.lastMinute = minute
			m.deps.Runner.Tick()
			m.refreshAll()
		} else if m.state == StateRoutines {
			m.refreshRoutines()
		}
		return m, tick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		listHeight := msg.Height - 6
		m.routinesModel.SetSize(msg.Width-4, listHeight)
		m.goalsModel.SetSize(msg.Width-4, listHeight)
		m.missionsModel.SetSize(msg.Width-4, listHeight)
		m.statsBar.Width = min(msg.Width-24, 40)
		return m, nil
	}

	// Form state owns all key input until completed or aborted.
	if m.state == StateForm {
		return m.updateForm(msg)
	}

	if m.state == StateConfirmDelete {
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch msg.String() {
			case "y", "Y":
				m.applyDelete()
				m.state = m.previousState
			case "n", "N", "esc":
				m.state = m.previousState
			}
		}
		return m, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextTab):
			m.state = (m.state + 1) % 5
			return m, nil
		case key.Matches(msg, m.keys.PrevTab):
			m.state = (m.state + 4) % 5
			return m, nil
		}

		if m.state == StateTimer {
			return m.updateTimerKeys(msg)
		}
	}

	switch msg := msg.(type) {
	case routines.AddRoutineMsg:
		m.routineForm = &RoutineFormModel{Icon: models.IconCircle}
		m.openForm(formAddRoutine, NewRoutineForm(m.routineForm), "")
		return m, m.form.Init()
	case routines.EditRoutineMsg:
		routine, found, err := m.deps.Routines.ByID(msg.ID)
		if err != nil || !found {
			return m, nil
		}
		m.routineForm = &RoutineFormModel{
			Title: routine.Title,
			Start: routine.StartTime,
			End:   routine.EndTime,
			Icon:  routine.Icon,
		}
		m.openForm(formEditRoutine, NewRoutineForm(m.routineForm), msg.ID)
		return m, m.form.Init()
	case routines.DeleteRoutineMsg:
		m.confirmDelete(deleteRoutine, msg.ID)
		return m, nil
	case routines.ToggleRoutineMsg:
		if _, _, err := m.deps.Routines.ToggleComplete(msg.ID); err == nil {
			if routineList, err := m.deps.Routines.All(); err == nil {
				m.deps.Recorder.CommitToday(routineList)
			}
			m.refreshRoutines()
		}
		return m, nil
	case routines.StartTimerMsg:
		if _, _, err := m.deps.Routines.StartTimer(msg.ID); err == nil {
			m.refreshRoutines()
		}
		return m, nil
	case routines.PauseTimerMsg:
		if _, _, err := m.deps.Routines.PauseTimer(msg.ID); err == nil {
			m.refreshRoutines()
		}
		return m, nil
	case routines.ResetTimerMsg:
		if _, _, err := m.deps.Routines.ResetTimer(msg.ID); err == nil {
			m.refreshRoutines()
		}
		return m, nil

	case goals.AddGoalMsg:
		m.titleForm = &TitleFormModel{}
		m.openForm(formAddGoal, NewTitleForm("Goal title", m.titleForm), "")
		return m, m.form.Init()
	case goals.RenameGoalMsg:
		m.titleForm = &TitleFormModel{}
		m.openForm(formRenameGoal, NewTitleForm("New title", m.titleForm), msg.ID)
		return m, m.form.Init()
	case goals.DeleteGoalMsg:
		m.confirmDelete(deleteGoal, msg.ID)
		return m, nil
	case goals.ToggleDayMsg:
		if _, _, err := m.deps.Goals.ToggleDay(msg.ID, msg.Day); err == nil {
			m.refreshGoals()
		}
		return m, nil

	case missions.AddMissionMsg:
		m.titleForm = &TitleFormModel{}
		m.openForm(formAddMission, NewTitleForm("Mission title", m.titleForm), "")
		return m, m.form.Init()
	case missions.RenameMissionMsg:
		m.titleForm = &TitleFormModel{}
		m.openForm(formRenameMission, NewTitleForm("New title", m.titleForm), msg.ID)
		return m, m.form.Init()
	case missions.DeleteMissionMsg:
		m.confirmDelete(deleteMission, msg.ID)
		return m, nil
	case missions.ToggleMissionMsg:
		if _, _, err := m.deps.Missions.Toggle(msg.ID); err == nil {
			m.refreshMissions()
		}
		return m, nil
	}

	var cmd tea.Cmd
	switch m.state {
	case StateRoutines:
		m.routinesModel, cmd = m.routinesModel.Update(msg)
	case StateGoals:
		m.goalsModel, cmd = m.goalsModel.Update(msg)
	case StateMissions:
		m.missionsModel, cmd = m.missionsModel.Update(msg)
	}
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m *Model) openForm(target formTarget, form *huh.Form, editingID string) {
	m.previousState = m.state
	m.state = StateForm
	m.formTarget = target
	m.form = form
	m.editingID = editingID
}

func (m *Model) confirmDelete(kind deleteTarget, id string) {
	m.previousState = m.state
	m.state = StateConfirmDelete
	m.deleteKind = kind
	m.deleteID = id
}

func (m *Model) applyDelete() {
	switch m.deleteKind {
	case deleteRoutine:
		if _, err := m.deps.Routines.Delete(m.deleteID); err == nil {
			m.refreshRoutines()
		}
	case deleteGoal:
		if _, err := m.deps.Goals.Delete(m.deleteID); err == nil {
			m.refreshGoals()
		}
	case deleteMission:
		if _, err := m.deps.Missions.Delete(m.deleteID); err == nil {
			m.refreshMissions()
		}
	}
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = m.previousState
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.applyForm()
		m.state = m.previousState
	case huh.StateAborted:
		m.state = m.previousState
	}
	return m, cmd
}

func (m *Model) applyForm() {
	switch m.formTarget {
	case formAddRoutine:
		if _, err := m.deps.Routines.Create(repo.RoutineInput{
			Title:     m.routineForm.Title,
			StartTime: m.routineForm.Start,
			EndTime:   m.routineForm.End,
			Icon:      m.routineForm.Icon,
		}); err == nil {
			m.refreshRoutines()
		}
	case formEditRoutine:
		patch := repo.RoutinePatch{
			Title:     &m.routineForm.Title,
			StartTime: &m.routineForm.Start,
			EndTime:   &m.routineForm.End,
			Icon:      &m.routineForm.Icon,
		}
		if _, _, err := m.deps.Routines.Update(m.editingID, patch); err == nil {
			m.refreshRoutines()
		}
	case formAddGoal:
		if _, err := m.deps.Goals.Create(m.titleForm.Title); err == nil {
			m.refreshGoals()
		}
	case formRenameGoal:
		if _, _, err := m.deps.Goals.Rename(m.editingID, m.titleForm.Title); err == nil {
			m.refreshGoals()
		}
	case formAddMission:
		if _, err := m.deps.Missions.Create(m.titleForm.Title); err == nil {
			m.refreshMissions()
		}
	case formRenameMission:
		if _, _, err := m.deps.Missions.Rename(m.editingID, m.titleForm.Title); err == nil {
			m.refreshMissions()
		}
	case formCountdown:
		m.countdown.Configure(
			atoiOrZero(m.countdownForm.Hours),
			atoiOrZero(m.countdownForm.Minutes),
			atoiOrZero(m.countdownForm.Seconds),
		)
	}
}

func (m Model) updateTimerKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "c":
		m.countdownForm = &CountdownFormModel{}
		m.openForm(formCountdown, NewCountdownForm(m.countdownForm), "")
		return m, m.form.Init()
	case "s":
		switch m.countdown.State() {
		case timer.StateRunning:
			m.countdown.Pause()
		default:
			m.countdown.Start()
		}
	case "r":
		m.countdown.Reset()
	}
	return m, nil
}
