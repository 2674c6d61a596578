package web

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/saijayin/agenda/internal/agg"
	"github.com/saijayin/agenda/internal/kv"
	"github.com/saijayin/agenda/internal/store"
	"github.com/saijayin/agenda/internal/task"
	"github.com/saijayin/agenda/internal/xlsx"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	backend, err := kv.NewFileStore(filepath.Join(t.TempDir(), "data"))
	if err != nil {
		t.Fatal(err)
	}
	st, err := store.Open(backend, store.DefaultKey)
	if err != nil {
		t.Fatal(err)
	}
	if err := st.SetWeekAnchor("2024-06-10"); err != nil {
		t.Fatal(err)
	}
	return NewService(st)
}

func TestServiceWeekView(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)

	if _, err := svc.CreateTask(store.Draft{DayIndex: 0, Title: "Plan", Dept: "IT", Owner: "Ana", Progress: 50}); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.CreateTask(store.Draft{DayIndex: 4, Title: "Cierre", Dept: "RH", Owner: "Carlos", Progress: 100}); err != nil {
		t.Fatal(err)
	}

	view, err := svc.Week("", agg.Filter{})
	if err != nil {
		t.Fatalf("Week: %v", err)
	}
	if view.Anchor != "2024-06-10" {
		t.Errorf("Anchor = %q", view.Anchor)
	}
	if view.Label != "Semana: 10/06/2024 – 14/06/2024" {
		t.Errorf("Label = %q", view.Label)
	}
	if view.Stats.Total != 2 || view.Stats.AvgProgress != 75 {
		t.Errorf("Stats = %+v", view.Stats)
	}
	if view.Days[0].Stats.Count != 1 || view.Days[4].Stats.Count != 1 {
		t.Errorf("day counts = %d/%d", view.Days[0].Stats.Count, view.Days[4].Stats.Count)
	}
	if view.Days[0].Name != "Lunes" || view.Days[0].DateISO != "2024-06-10" {
		t.Errorf("Monday view = %+v", view.Days[0])
	}
	if len(view.Depts) != 2 || len(view.Owners) != 2 {
		t.Errorf("vocabularies = %v / %v", view.Depts, view.Owners)
	}

	// Filtered view narrows buckets but keeps week stats stable.
	view, err = svc.Week("", agg.Filter{Dept: "RH"})
	if err != nil {
		t.Fatal(err)
	}
	if view.Days[0].Stats.Count != 0 || view.Days[4].Stats.Count != 1 {
		t.Errorf("filtered day counts = %d/%d", view.Days[0].Stats.Count, view.Days[4].Stats.Count)
	}
	if view.Stats.Total != 2 {
		t.Errorf("filtered week stats changed: %+v", view.Stats)
	}
}

func TestServiceImportReplacesWeek(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)

	prior, err := svc.CreateTask(store.Draft{DayIndex: 1, Title: "Vieja", Dept: "IT", Owner: "Ana"})
	if err != nil {
		t.Fatal(err)
	}

	// Build a workbook through the real writer.
	var buf bytes.Buffer
	err = xlsx.WriteWeek(&buf, []task.Task{
		{ID: "x", DateISO: "2024-06-12", Title: "Nueva", Dept: "RH", Owner: "María", Progress: 60, Status: task.StatusInProgress, Priority: task.PriorityMedium},
	})
	if err != nil {
		t.Fatal(err)
	}

	count, err := svc.Import(bytes.NewReader(buf.Bytes()), "2024-06-10")
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if count != 1 {
		t.Errorf("imported %d tasks, want 1", count)
	}

	view, err := svc.Week("", agg.Filter{})
	if err != nil {
		t.Fatal(err)
	}
	if view.Stats.Total != 1 {
		t.Errorf("week holds %d tasks after import, want full replace", view.Stats.Total)
	}
	for _, day := range view.Days {
		for _, tk := range day.Tasks {
			if tk.ID == prior.ID {
				t.Error("prior task survived the import replace")
			}
		}
	}
}

func TestServiceImportGarbageLeavesStoreUntouched(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)

	if _, err := svc.CreateTask(store.Draft{DayIndex: 0, Title: "Plan", Dept: "IT", Owner: "Ana"}); err != nil {
		t.Fatal(err)
	}

	if _, err := svc.Import(bytes.NewReader([]byte("not a workbook")), ""); err == nil {
		t.Fatal("Import accepted garbage")
	}

	view, _ := svc.Week("", agg.Filter{})
	if view.Stats.Total != 1 {
		t.Errorf("failed import changed the store: %+v", view.Stats)
	}
}

func TestServiceExportNamesFile(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)

	var buf bytes.Buffer
	name, err := svc.Export(&buf, "2024-06-13") // Thursday snaps to Monday
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if name != "agenda_2024-06-10.xlsx" {
		t.Errorf("export name = %q", name)
	}
	if buf.Len() == 0 {
		t.Error("export produced no bytes")
	}
}

func TestServiceChartData(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)

	if _, err := svc.CreateTask(store.Draft{DayIndex: 2, Title: "Plan", Dept: "IT", Owner: "Ana", Progress: 80}); err != nil {
		t.Fatal(err)
	}

	chart, err := svc.ChartData("")
	if err != nil {
		t.Fatal(err)
	}
	if chart.Counts[2] != 1 || chart.AvgProgress[2] != 80 {
		t.Errorf("chart = %+v", chart)
	}
}
