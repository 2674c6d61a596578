// Package week implements Monday-anchored week arithmetic over
// canonical YYYY-MM-DD date strings. All dates are local-time
// midnights; no time-of-day component is ever carried.
package week

import (
	"fmt"
	"time"
)

// ISOLayout is the canonical date format used everywhere in the store,
// the spreadsheet columns and the persisted state.
const ISOLayout = "2006-01-02"

// DayNames are the Monday-Friday labels used for buckets, the chart
// and the Día spreadsheet column.
var DayNames = [5]string{"Lunes", "Martes", "Miércoles", "Jueves", "Viernes"}

var allDayNames = map[time.Weekday]string{
	time.Monday:    "Lunes",
	time.Tuesday:   "Martes",
	time.Wednesday: "Miércoles",
	time.Thursday:  "Jueves",
	time.Friday:    "Viernes",
	time.Saturday:  "Sábado",
	time.Sunday:    "Domingo",
}

// ToISO formats a date as YYYY-MM-DD, discarding any time-of-day.
func ToISO(d time.Time) string {
	return d.Format(ISOLayout)
}

// FromISO parses a canonical YYYY-MM-DD string into a local midnight.
func FromISO(iso string) (time.Time, error) {
	d, err := time.ParseInLocation(ISOLayout, iso, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", iso, err)
	}
	return d, nil
}

// MondayOf returns the Monday on or before d. Sunday maps back six
// days, every other weekday maps back weekday-1 days.
func MondayOf(d time.Time) time.Time {
	diff := int(d.Weekday()) - int(time.Monday)
	if d.Weekday() == time.Sunday {
		diff = 6
	}
	return time.Date(d.Year(), d.Month(), d.Day()-diff, 0, 0, 0, 0, d.Location())
}

// MondayOfISO snaps a canonical date string to the Monday of its week.
func MondayOfISO(iso string) (string, error) {
	d, err := FromISO(iso)
	if err != nil {
		return "", err
	}
	return ToISO(MondayOf(d)), nil
}

// AddDays offsets a canonical date by n days (signed) and
// re-canonicalizes.
func AddDays(iso string, n int) (string, error) {
	d, err := FromISO(iso)
	if err != nil {
		return "", err
	}
	return ToISO(d.AddDate(0, 0, n)), nil
}

// DayIndex returns the whole-day difference between dateISO and the
// week anchor. Values outside [0,4] mean the date falls outside the
// anchor's Monday-Friday window.
func DayIndex(anchorISO, dateISO string) (int, error) {
	anchor, err := FromISO(anchorISO)
	if err != nil {
		return 0, err
	}
	d, err := FromISO(dateISO)
	if err != nil {
		return 0, err
	}
	// Whole calendar days; both values are local midnights so the
	// rounded hour division absorbs DST shifts.
	hours := d.Sub(anchor).Hours()
	days := int(hours / 24)
	if rem := hours - float64(days)*24; rem > 12 {
		days++
	} else if rem < -12 {
		days--
	}
	return days, nil
}

// DayName returns the Spanish weekday name for a canonical date.
func DayName(iso string) (string, error) {
	d, err := FromISO(iso)
	if err != nil {
		return "", err
	}
	return allDayNames[d.Weekday()], nil
}

// Label renders the "Semana: dd/mm/yyyy – dd/mm/yyyy" heading for the
// Monday-Friday span starting at anchorISO.
func Label(anchorISO string) (string, error) {
	start, err := FromISO(anchorISO)
	if err != nil {
		return "", err
	}
	end := start.AddDate(0, 0, 4)
	return fmt.Sprintf("Semana: %s – %s", start.Format("02/01/2006"), end.Format("02/01/2006")), nil
}
