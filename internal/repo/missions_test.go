package repo

import "testing"

func TestMissionsToggle(t *testing.T) {
	m := NewMissions(newTestStore(t), testUser, testClock())
	mission, err := m.Create("Ship the release")
	if err != nil {
		t.Fatal(err)
	}

	toggled, matched, err := m.Toggle(mission.ID)
	if err != nil || !matched || !toggled.Completed {
		t.Fatalf("toggle: %+v matched=%v err=%v", toggled, matched, err)
	}

	toggled, _, _ = m.Toggle(mission.ID)
	if toggled.Completed {
		t.Error("second toggle should reopen the mission")
	}
}

func TestMissionsClear(t *testing.T) {
	m := NewMissions(newTestStore(t), testUser, testClock())
	m.Create("A")
	m.Create("B")

	if err := m.Clear(); err != nil {
		t.Fatal(err)
	}
	missions, _ := m.All()
	if len(missions) != 0 {
		t.Errorf("got %d missions after clear", len(missions))
	}
}

func TestMissionsStats(t *testing.T) {
	m := NewMissions(newTestStore(t), testUser, testClock())
	a, _ := m.Create("A")
	m.Create("B")
	m.Create("C")
	m.Toggle(a.ID)

	ms, err := m.Stats()
	if err != nil {
		t.Fatal(err)
	}
	if ms.Total != 3 || ms.Completed != 1 {
		t.Errorf("stats = %+v", ms)
	}
	if ms.Percentage != 33 {
		t.Errorf("Percentage = %d, want 33", ms.Percentage)
	}
	// clock fixed at 2026-08-29
	if ms.MonthName != "AGOSTO" || ms.Year != 2026 || ms.Identifier != "2026-08" {
		t.Errorf("month fields = %q %d %q", ms.MonthName, ms.Year, ms.Identifier)
	}
}

func TestMissionsUnknownIDIsSilentNoOp(t *testing.T) {
	m := NewMissions(newTestStore(t), testUser, testClock())
	m.Create("A")

	_, matched, err := m.Toggle("nope")
	if err != nil || matched {
		t.Errorf("toggle unknown: matched=%v err=%v", matched, err)
	}
	matched, err = m.Delete("nope")
	if err != nil || matched {
		t.Errorf("delete unknown: matched=%v err=%v", matched, err)
	}
	missions, _ := m.All()
	if len(missions) != 1 {
		t.Errorf("collection changed: %d missions", len(missions))
	}
}
