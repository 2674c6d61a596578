// Package xlsx is the tabular file capability: it converts between
// workbook files and the importer's row representation, and writes the
// weekly export and template workbooks.
package xlsx

import (
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/saijayin/agenda/internal/agg"
	"github.com/saijayin/agenda/internal/importer"
	"github.com/saijayin/agenda/internal/task"
	"github.com/saijayin/agenda/internal/week"
)

// SheetName is the single sheet both export and template use.
const SheetName = "Agenda"

// TemplateFileName is the fixed name of the example workbook.
const TemplateFileName = "plantilla_agenda_semanal.xlsx"

// Columns is the fixed export column order.
var Columns = [8]string{"Fecha", "Día", "Tarea", "Departamento", "Responsable", "Progreso", "Estado", "Prioridad"}

// ExportFileName names the weekly export workbook.
func ExportFileName(weekISO string) string {
	return fmt.Sprintf("agenda_%s.xlsx", weekISO)
}

// ReadRows decodes the first sheet of a workbook into importer rows.
// The first row is the header; missing trailing cells default to "".
// Cells whose raw value is numeric come back as number cells so the
// importer can treat them as progress values or date serials.
func ReadRows(r io.Reader) ([]importer.Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	raw, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	if len(raw) < 2 {
		return nil, nil
	}

	headers := raw[0]
	var rows []importer.Row
	for _, line := range raw[1:] {
		row := make(importer.Row, len(headers))
		for i, h := range headers {
			if h == "" {
				continue
			}
			cell := ""
			if i < len(line) {
				cell = line[i]
			}
			if n, err := strconv.ParseFloat(cell, 64); err == nil && cell != "" {
				row[h] = importer.Number(n)
			} else {
				row[h] = importer.Text(cell)
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// WriteWeek writes a week's tasks as a workbook in the fixed column
// order, sorted by date then title, with effective status and clamped
// progress (the export never carries a stale stored status).
func WriteWeek(w io.Writer, tasks []task.Task) error {
	sorted := make([]task.Task, len(tasks))
	copy(sorted, tasks)
	agg.SortBoard(sorted)

	f := excelize.NewFile()
	defer f.Close()
	f.SetSheetName("Sheet1", SheetName)

	for i, col := range Columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(SheetName, cell, col); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}

	for rowIdx, t := range sorted {
		dayName, err := week.DayName(t.DateISO)
		if err != nil {
			return fmt.Errorf("task %s: %w", t.ID, err)
		}
		values := []any{
			t.DateISO,
			dayName,
			t.Title,
			t.Dept,
			t.Owner,
			task.Clamp(t.Progress),
			string(t.EffectiveStatus()),
			string(t.Priority),
		}
		for colIdx, v := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err := f.SetCellValue(SheetName, cell, v); err != nil {
				return fmt.Errorf("failed to write row %d: %w", rowIdx+2, err)
			}
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// WriteTemplate writes the one-row example workbook users fill in.
// The example row sits on the Monday of the given week.
func WriteTemplate(w io.Writer, anchorISO string) error {
	monday, err := week.MondayOfISO(anchorISO)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()
	f.SetSheetName("Sheet1", SheetName)

	// The template shows the columns users fill in; priority is
	// optional and defaults on import, so it is left out.
	headers := []string{"Fecha", "Día", "Tarea", "Departamento", "Responsable", "Progreso", "Estado"}
	example := []any{monday, "Lunes", "Ej. Actualizar expedientes", "RH", "Nombre Apellido", 0, "Pendiente"}

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(SheetName, cell, h); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}
	for i, v := range example {
		cell, _ := excelize.CoordinatesToCellName(i+1, 2)
		if err := f.SetCellValue(SheetName, cell, v); err != nil {
			return fmt.Errorf("failed to write example row: %w", err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
