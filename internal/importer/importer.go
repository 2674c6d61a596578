// Package importer reconciles loosely-structured spreadsheet rows into
// normalized task records for one target week. Column headers are
// matched against an alias table, dates are resolved from explicit
// values or day names, and every resulting task is snapped into the
// target week's Monday-Friday window.
package importer

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/saijayin/agenda/internal/task"
	"github.com/saijayin/agenda/internal/week"
)

// ErrNoRows is returned when no row yields a task. Individual rows
// without a title are dropped silently; only a wholly empty result is
// an error.
var ErrNoRows = errors.New("no importable rows found")

// Kind discriminates the raw cell value union.
type Kind int

const (
	KindText Kind = iota
	KindNumber
)

// Cell is one raw spreadsheet value: text or a numeric value that may
// be an Excel date serial.
type Cell struct {
	Kind   Kind
	Text   string
	Number float64
}

// Text makes a text cell.
func Text(s string) Cell { return Cell{Kind: KindText, Text: s} }

// Number makes a numeric cell.
func Number(f float64) Cell { return Cell{Kind: KindNumber, Number: f} }

// IsEmpty reports whether the cell carries no usable value.
func (c Cell) IsEmpty() bool {
	return c.Kind == KindText && strings.TrimSpace(c.Text) == ""
}

// String renders the cell as trimmed text.
func (c Cell) String() string {
	if c.Kind == KindNumber {
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	}
	return strings.TrimSpace(c.Text)
}

// Row is one spreadsheet row keyed by header.
type Row map[string]Cell

// Canonical field names resolved by the alias table.
const (
	FieldTitle    = "title"
	FieldDept     = "dept"
	FieldOwner    = "owner"
	FieldProgress = "progress"
	FieldStatus   = "status"
	FieldPriority = "priority"
	FieldDate     = "date"
	FieldDay      = "day"
)

// aliases maps each canonical field to its accepted header spellings,
// in priority order. Accented and unaccented variants both appear
// because exported files vary.
var aliases = map[string][]string{
	FieldTitle:    {"Tarea", "tarea", "Actividad", "actividad", "Task"},
	FieldDept:     {"Departamento", "depto", "Depto", "Area", "Área"},
	FieldOwner:    {"Responsable", "responsable", "Owner", "Encargado"},
	FieldProgress: {"Progreso", "progreso", "%", "Avance", "avance"},
	FieldStatus:   {"Estado", "estado", "Status"},
	FieldPriority: {"Prioridad", "prioridad", "Priority"},
	FieldDate:     {"Fecha", "fecha", "Date"},
	FieldDay:      {"Día", "Dia", "día", "dia", "Day"},
}

// Pick resolves a canonical field against a row: for each alias in
// order, an exact header match wins, then a case-insensitive one.
func (r Row) Pick(field string) (Cell, bool) {
	for _, alias := range aliases[field] {
		if c, ok := r[alias]; ok {
			return c, true
		}
		for k, c := range r {
			if strings.EqualFold(k, alias) {
				return c, true
			}
		}
	}
	return Cell{}, false
}

var accentFolder = strings.NewReplacer("á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u")

var dayIndexes = map[string]int{
	"lunes":     0,
	"martes":    1,
	"miercoles": 2,
	"jueves":    3,
	"viernes":   4,
}

// DayNameIndex maps a weekday name to its offset within the week,
// ignoring case and accents. The second result is false for anything
// that is not one of the five working days.
func DayNameIndex(name string) (int, bool) {
	folded := accentFolder.Replace(strings.ToLower(strings.TrimSpace(name)))
	idx, ok := dayIndexes[folded]
	return idx, ok
}

var (
	isoDateRe   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	dmyDateRe   = regexp.MustCompile(`^(\d{1,2})[/\-](\d{1,2})[/\-](\d{4})$`)
	fallbackFmt = []string{"2006/01/02", "02 Jan 2006", "Jan 2, 2006"}
)

// resolveDate converts an explicit date cell into a canonical date
// string, or "" when nothing parses.
func resolveDate(c Cell) string {
	if c.Kind == KindNumber {
		// Excel stores dates as day serials; delegate decoding to the
		// spreadsheet library.
		d, err := excelize.ExcelDateToTime(c.Number, false)
		if err != nil {
			return ""
		}
		return week.ToISO(d)
	}

	s := strings.TrimSpace(c.Text)
	if s == "" {
		return ""
	}
	if isoDateRe.MatchString(s) {
		if _, err := week.FromISO(s); err == nil {
			return s
		}
		return ""
	}
	if m := dmyDateRe.FindStringSubmatch(s); m != nil {
		iso := m[3] + "-" + pad2(m[2]) + "-" + pad2(m[1])
		if _, err := week.FromISO(iso); err == nil {
			return iso
		}
		return ""
	}
	for _, layout := range fallbackFmt {
		if d, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return week.ToISO(d)
		}
	}
	return ""
}

func pad2(s string) string {
	n, _ := strconv.Atoi(s)
	return fmt.Sprintf("%02d", n)
}

// Reconcile transforms rows into normalized tasks for the target
// week. Rows without a resolvable title are dropped; a fully empty
// result yields ErrNoRows.
func Reconcile(rows []Row, anchorISO string) ([]task.Task, error) {
	monday, err := week.MondayOfISO(anchorISO)
	if err != nil {
		return nil, err
	}

	var imported []task.Task
	for _, r := range rows {
		titleCell, _ := r.Pick(FieldTitle)
		title := titleCell.String()
		if title == "" {
			continue
		}

		deptCell, _ := r.Pick(FieldDept)
		ownerCell, _ := r.Pick(FieldOwner)

		progress := 0
		if c, ok := r.Pick(FieldProgress); ok {
			if c.Kind == KindNumber {
				progress = task.ClampFloat(c.Number)
			} else {
				progress = task.ParseProgress(c.Text)
			}
		}

		statusCell, _ := r.Pick(FieldStatus)
		priorityCell, _ := r.Pick(FieldPriority)

		dateISO := ""
		if c, ok := r.Pick(FieldDate); ok {
			dateISO = resolveDate(c)
		}
		if dateISO == "" {
			if c, ok := r.Pick(FieldDay); ok {
				if idx, found := DayNameIndex(c.String()); found {
					dateISO, _ = week.AddDays(monday, idx)
				}
			}
		}
		if dateISO == "" {
			dateISO = monday
		}

		// Snap into the target week: anything outside Monday-Friday
		// lands on Monday.
		idx, err := week.DayIndex(monday, dateISO)
		if err != nil || idx < 0 || idx > 4 {
			idx = 0
		}
		fixedDate, err := week.AddDays(monday, idx)
		if err != nil {
			return nil, err
		}

		dept := deptCell.String()
		if dept == "" {
			dept = task.Placeholder
		}
		owner := ownerCell.String()
		if owner == "" {
			owner = task.Placeholder
		}

		imported = append(imported, task.Task{
			ID:       task.NewID(),
			DateISO:  fixedDate,
			Title:    title,
			Dept:     dept,
			Owner:    owner,
			Progress: progress,
			Status:   task.ResolveStatus(statusCell.String(), progress),
			Priority: task.ResolvePriority(priorityCell.String()),
		})
	}

	if len(imported) == 0 {
		return nil, ErrNoRows
	}
	return imported, nil
}
