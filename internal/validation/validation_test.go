package validation

import "testing"

func TestValidClock(t *testing.T) {
	valid := []string{"00:00", "09:30", "23:59", "7:05"}
	for _, s := range valid {
		if !ValidClock(s) {
			t.Errorf("expected %q to be a valid clock time", s)
		}
	}

	invalid := []string{"", "24:00", "12:60", "noon", "12", "12:3a"}
	for _, s := range invalid {
		if ValidClock(s) {
			t.Errorf("expected %q to be rejected", s)
		}
	}
}

func TestRoutine_Valid(t *testing.T) {
	if errs := Routine("Read", "08:00", "09:00"); errs != nil {
		t.Errorf("expected no errors, got %v", errs)
	}
	// endTime is optional
	if errs := Routine("Read", "08:00", ""); errs != nil {
		t.Errorf("expected no errors without end time, got %v", errs)
	}
}

func TestRoutine_CollectsAllFieldErrors(t *testing.T) {
	errs := Routine("  ", "bad", "worse")
	if errs == nil {
		t.Fatal("expected errors")
	}
	for _, field := range []string{"title", "startTime", "endTime"} {
		if _, ok := errs[field]; !ok {
			t.Errorf("expected an error keyed on %q, got %v", field, errs)
		}
	}
}

func TestRoutine_EndBeforeStart(t *testing.T) {
	errs := Routine("Read", "09:00", "08:00")
	if errs == nil || errs["endTime"] == "" {
		t.Errorf("expected endTime error, got %v", errs)
	}
	// equal is also invalid
	errs = Routine("Read", "09:00", "09:00")
	if errs == nil || errs["endTime"] == "" {
		t.Errorf("expected endTime error for equal times, got %v", errs)
	}
}

func TestErrors_OrNil(t *testing.T) {
	var empty Errors
	if empty.OrNil() != nil {
		t.Error("empty Errors should collapse to nil error")
	}
	if (Errors{}).OrNil() != nil {
		t.Error("zero-length Errors should collapse to nil error")
	}
	if (Errors{"title": "required"}).OrNil() == nil {
		t.Error("non-empty Errors should be an error")
	}
}

func TestErrors_ErrorStableOrder(t *testing.T) {
	errs := Errors{"startTime": "bad", "endTime": "bad", "title": "required"}
	want := "endTime: bad; startTime: bad; title: required"
	if got := errs.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestDate(t *testing.T) {
	if errs := Date("2026-08-29"); errs != nil {
		t.Errorf("expected valid date, got %v", errs)
	}
	if errs := Date("29-08-2026"); errs == nil {
		t.Error("expected invalid date to be rejected")
	}
}
