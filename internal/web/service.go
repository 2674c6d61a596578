package web

import (
	"fmt"
	"io"
	"sync"

	"github.com/saijayin/agenda/internal/agg"
	"github.com/saijayin/agenda/internal/importer"
	"github.com/saijayin/agenda/internal/store"
	"github.com/saijayin/agenda/internal/task"
	"github.com/saijayin/agenda/internal/week"
	"github.com/saijayin/agenda/internal/xlsx"
)

// DayView is one weekday column of the board.
type DayView struct {
	Name    string       `json:"name"`
	DateISO string       `json:"dateISO"`
	Stats   agg.DayStats `json:"stats"`
	Tasks   []task.Task  `json:"tasks"`
}

// WeekView is the full board payload for one week.
type WeekView struct {
	Anchor string        `json:"anchor"`
	Label  string        `json:"label"`
	Days   [5]DayView    `json:"days"`
	Stats  agg.WeekStats `json:"stats"`
	Depts  []string      `json:"depts"`
	Owners []string      `json:"owners"`
}

// BoardService is the surface the handlers depend on.
type BoardService interface {
	Week(anchorISO string, f agg.Filter) (WeekView, error)
	ChartData(anchorISO string) (agg.ChartData, error)
	CreateTask(d store.Draft) (task.Task, error)
	UpdateTask(id string, d store.Draft) (task.Task, error)
	DeleteTask(id string) error
	SetWeek(iso string) (string, error)
	Import(r io.Reader, anchorISO string) (int, error)
	Export(w io.Writer, anchorISO string) (string, error)
	Template(w io.Writer) error
}

// Service implements BoardService over the task store. The store
// itself is single-threaded; the mutex serializes the gin handlers.
type Service struct {
	mu sync.Mutex
	st *store.Store
}

// NewService wraps a store.
func NewService(st *store.Store) *Service {
	return &Service{st: st}
}

// anchorOr snaps the requested anchor to Monday, falling back to the
// store's selected week when empty.
func (s *Service) anchorOr(anchorISO string) (string, error) {
	if anchorISO == "" {
		return s.st.WeekAnchor(), nil
	}
	return week.MondayOfISO(anchorISO)
}

func (s *Service) Week(anchorISO string, f agg.Filter) (WeekView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	anchor, err := s.anchorOr(anchorISO)
	if err != nil {
		return WeekView{}, err
	}
	label, err := week.Label(anchor)
	if err != nil {
		return WeekView{}, err
	}

	weekTasks := agg.TasksInWeek(s.st.Tasks(), anchor)
	filtered := f.Apply(weekTasks)
	buckets := agg.DayBuckets(filtered, anchor)

	view := WeekView{
		Anchor: anchor,
		Label:  label,
		// Summary stats stay unfiltered so the dashboard is stable
		// while filters change.
		Stats:  agg.WeekStatsOf(weekTasks),
		Depts:  agg.Depts(weekTasks),
		Owners: agg.Owners(weekTasks),
	}
	for i := range view.Days {
		dateISO, err := week.AddDays(anchor, i)
		if err != nil {
			return WeekView{}, err
		}
		tasks := buckets[i]
		if tasks == nil {
			tasks = []task.Task{}
		}
		view.Days[i] = DayView{
			Name:    week.DayNames[i],
			DateISO: dateISO,
			Stats:   agg.PerDayStats(tasks),
			Tasks:   tasks,
		}
	}
	return view, nil
}

func (s *Service) ChartData(anchorISO string) (agg.ChartData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	anchor, err := s.anchorOr(anchorISO)
	if err != nil {
		return agg.ChartData{}, err
	}
	weekTasks := agg.TasksInWeek(s.st.Tasks(), anchor)
	return agg.Chart(weekTasks, anchor), nil
}

func (s *Service) CreateTask(d store.Draft) (task.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.Create(d)
}

func (s *Service) UpdateTask(id string, d store.Draft) (task.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.Update(id, d)
}

func (s *Service) DeleteTask(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.Delete(id)
}

func (s *Service) SetWeek(iso string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.st.SetWeekAnchor(iso); err != nil {
		return "", err
	}
	return s.st.WeekAnchor(), nil
}

// Import decodes a workbook, reconciles its rows for the target week
// and replaces that week's tasks. The store is untouched when the
// file cannot be decoded or yields no rows.
func (s *Service) Import(r io.Reader, anchorISO string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	anchor, err := s.anchorOr(anchorISO)
	if err != nil {
		return 0, err
	}
	rows, err := xlsx.ReadRows(r)
	if err != nil {
		return 0, fmt.Errorf("failed to read workbook: %w", err)
	}
	imported, err := importer.Reconcile(rows, anchor)
	if err != nil {
		return 0, err
	}
	if err := s.st.ReplaceWeek(anchor, imported); err != nil {
		return 0, err
	}
	return len(imported), nil
}

func (s *Service) Export(w io.Writer, anchorISO string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	anchor, err := s.anchorOr(anchorISO)
	if err != nil {
		return "", err
	}
	weekTasks := agg.TasksInWeek(s.st.Tasks(), anchor)
	if err := xlsx.WriteWeek(w, weekTasks); err != nil {
		return "", err
	}
	return xlsx.ExportFileName(anchor), nil
}

func (s *Service) Template(w io.Writer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return xlsx.WriteTemplate(w, s.st.WeekAnchor())
}
