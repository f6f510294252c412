package models

import "testing"

func TestParseClock(t *testing.T) {
	cases := []struct {
		in   string
		want TimeOfDay
	}{
		{"08:00", NewTimeOfDay(8, 0)},
		{"23:45", NewTimeOfDay(23, 45)},
		{"00:00", 0},
		{"24:00", 0},
		{"25:00", NewTimeOfDay(1, 0)},
	}
	for _, c := range cases {
		got, err := ParseClock(c.in)
		if err != nil {
			t.Fatalf("ParseClock(%q): %v", c.in, err)
		}
		if got != c.want {
			t.Errorf("ParseClock(%q) = %v, want %v", c.in, got, c.want)
		}
	}

	for _, bad := range []string{"", "8", "ab:cd", "10:61", "-1:00"} {
		if _, err := ParseClock(bad); err == nil {
			t.Errorf("ParseClock(%q) should fail", bad)
		}
	}
}

func TestTickTime(t *testing.T) {
	if got := TickTime(0); got != NewTimeOfDay(8, 0) {
		t.Errorf("tick 0 = %v, want 08:00", got)
	}
	if got := TickTime(1); got != NewTimeOfDay(8, 15) {
		t.Errorf("tick 1 = %v, want 08:15", got)
	}
	if got := TickTime(64); got != 0 {
		t.Errorf("tick 64 = %v, want 00:00", got)
	}
	if got := TickTime(95); got != NewTimeOfDay(7, 45) {
		t.Errorf("tick 95 = %v, want 07:45", got)
	}
}

func TestTickHourUnwrapped(t *testing.T) {
	// ticks past midnight keep counting so evening slots cannot match
	if got := TickHour(64); got != 24 {
		t.Errorf("TickHour(64) = %d, want 24", got)
	}
	if got := TickHour(95); got != 31 {
		t.Errorf("TickHour(95) = %d, want 31", got)
	}
}

func TestClampTick(t *testing.T) {
	if got := ClampTick(-5); got != 0 {
		t.Errorf("ClampTick(-5) = %d", got)
	}
	if got := ClampTick(200); got != TicksPerDay-1 {
		t.Errorf("ClampTick(200) = %d", got)
	}
}

func TestParseDay(t *testing.T) {
	if got := ParseDay("Saturday"); got != Saturday {
		t.Errorf("ParseDay(Saturday) = %v", got)
	}
	if got := ParseDay("sat"); got != Saturday {
		t.Errorf("ParseDay(sat) = %v", got)
	}
	if got := ParseDay("nonsense"); got != Monday {
		t.Errorf("ParseDay(nonsense) = %v, want Monday", got)
	}
}

func TestDayNext(t *testing.T) {
	if got := Sunday.Next(); got != Monday {
		t.Errorf("Sunday.Next() = %v", got)
	}
	if got := Friday.Next(); got != Saturday {
		t.Errorf("Friday.Next() = %v", got)
	}
}

func TestParseTimeSlot(t *testing.T) {
	start, end, err := ParseTimeSlot("08:00-10:00")
	if err != nil {
		t.Fatalf("ParseTimeSlot: %v", err)
	}
	if start != 8 || end != 10 {
		t.Errorf("got (%d, %d), want (8, 10)", start, end)
	}

	for _, bad := range []string{"", "08:00", "10:00-08:00", "x-y"} {
		if _, _, err := ParseTimeSlot(bad); err == nil {
			t.Errorf("ParseTimeSlot(%q) should fail", bad)
		}
	}
}

func TestHourRangeWrap(t *testing.T) {
	r, err := NewHourRange("18:00", "25:00")
	if err != nil {
		t.Fatalf("NewHourRange: %v", err)
	}
	if !r.Wraps {
		t.Fatal("close 25:00 should wrap")
	}
	if !r.Contains(NewTimeOfDay(0, 30)) {
		t.Error("00:30 should be inside a 18:00-25:00 range")
	}
	if r.Contains(NewTimeOfDay(1, 30)) {
		t.Error("01:30 should be outside a 18:00-25:00 range")
	}
	if !r.Contains(NewTimeOfDay(22, 0)) {
		t.Error("22:00 should be inside a 18:00-25:00 range")
	}
	if r.Contains(NewTimeOfDay(17, 0)) {
		t.Error("17:00 should be outside a 18:00-25:00 range")
	}
}

func TestAgeGroupOf(t *testing.T) {
	cases := map[int]string{14: "10s", 24: "20s", 35: "30s", 49: "40s", 50: "50s+", 67: "50s+", 0: "unknown"}
	for age, want := range cases {
		if got := AgeGroupOf(age); got != want {
			t.Errorf("AgeGroupOf(%d) = %q, want %q", age, got, want)
		}
	}
}
