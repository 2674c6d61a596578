package week

import (
	"testing"
	"time"
)

func TestMondayOfAlwaysMonday(t *testing.T) {
	// One full week plus the surrounding Sundays.
	dates := []string{
		"2024-06-09", // Sunday -> 2024-06-03
		"2024-06-10", // Monday, already anchored
		"2024-06-11",
		"2024-06-12",
		"2024-06-13",
		"2024-06-14",
		"2024-06-15", // Saturday
		"2024-06-16", // Sunday -> 2024-06-10
	}

	for _, iso := range dates {
		d, err := FromISO(iso)
		if err != nil {
			t.Fatalf("FromISO(%q): %v", iso, err)
		}
		m := MondayOf(d)
		if m.Weekday() != time.Monday {
			t.Errorf("MondayOf(%s) = %s, weekday %s", iso, ToISO(m), m.Weekday())
		}
		// Idempotence.
		if again := MondayOf(m); !again.Equal(m) {
			t.Errorf("MondayOf not idempotent for %s: %s != %s", iso, ToISO(again), ToISO(m))
		}
	}
}

func TestMondayOfISO(t *testing.T) {
	cases := map[string]string{
		"2024-06-09": "2024-06-03",
		"2024-06-10": "2024-06-10",
		"2024-06-14": "2024-06-10",
		"2024-06-16": "2024-06-10",
		"2024-01-01": "2024-01-01", // Monday on a year boundary
	}
	for in, want := range cases {
		got, err := MondayOfISO(in)
		if err != nil {
			t.Fatalf("MondayOfISO(%q): %v", in, err)
		}
		if got != want {
			t.Errorf("MondayOfISO(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestDayIndexRoundTrip(t *testing.T) {
	anchor := "2024-06-10"
	for n := -10; n <= 10; n++ {
		iso, err := AddDays(anchor, n)
		if err != nil {
			t.Fatal(err)
		}
		idx, err := DayIndex(anchor, iso)
		if err != nil {
			t.Fatal(err)
		}
		if idx != n {
			t.Errorf("DayIndex(%s, AddDays(%s, %d)) = %d, want %d", anchor, anchor, n, idx, n)
		}
	}
}

func TestAddDaysAcrossMonthBoundary(t *testing.T) {
	got, err := AddDays("2024-01-29", 4)
	if err != nil {
		t.Fatal(err)
	}
	if got != "2024-02-02" {
		t.Errorf("AddDays = %q, want 2024-02-02", got)
	}

	got, err = AddDays("2024-03-01", -1)
	if err != nil {
		t.Fatal(err)
	}
	if got != "2024-02-29" {
		t.Errorf("AddDays = %q, want 2024-02-29 (leap year)", got)
	}
}

func TestFromISORejectsMalformed(t *testing.T) {
	for _, iso := range []string{"", "hoy", "2024-6-1", "10/06/2024", "2024-13-01"} {
		if _, err := FromISO(iso); err == nil {
			t.Errorf("FromISO(%q) succeeded, want error", iso)
		}
	}
}

func TestDayName(t *testing.T) {
	cases := map[string]string{
		"2024-06-10": "Lunes",
		"2024-06-12": "Miércoles",
		"2024-06-14": "Viernes",
		"2024-06-15": "Sábado",
		"2024-06-16": "Domingo",
	}
	for iso, want := range cases {
		got, err := DayName(iso)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("DayName(%q) = %q, want %q", iso, got, want)
		}
	}
}

func TestLabel(t *testing.T) {
	got, err := Label("2024-06-10")
	if err != nil {
		t.Fatal(err)
	}
	want := "Semana: 10/06/2024 – 14/06/2024"
	if got != want {
		t.Errorf("Label = %q, want %q", got, want)
	}
}
