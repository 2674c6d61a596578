package agg

import (
	"reflect"
	"testing"

	"github.com/saijayin/agenda/internal/task"
)

const anchor = "2024-06-10"

func sampleWeek() []task.Task {
	return []task.Task{
		{ID: "1", DateISO: "2024-06-10", Title: "Plan", Dept: "IT", Owner: "Ana", Progress: 50, Status: task.StatusInProgress, Priority: task.PriorityMedium},
		{ID: "2", DateISO: "2024-06-10", Title: "Backlog", Dept: "RH", Owner: "Carlos", Progress: 0, Status: task.StatusPending, Priority: task.PriorityHigh},
		{ID: "3", DateISO: "2024-06-12", Title: "Capacitación", Dept: "RH", Owner: "María", Progress: 100, Status: task.StatusDone, Priority: task.PriorityLow},
		{ID: "4", DateISO: "2024-06-14", Title: "Cierre", Dept: "IT", Owner: "Ana", Progress: 90, Status: task.StatusInProgress, Priority: task.PriorityMedium},
		// Next week; must not appear in this week's views.
		{ID: "5", DateISO: "2024-06-17", Title: "Siguiente", Dept: "IT", Owner: "Ana", Progress: 10, Status: task.StatusInProgress, Priority: task.PriorityMedium},
	}
}

func TestTasksInWeek(t *testing.T) {
	got := TasksInWeek(sampleWeek(), anchor)
	if len(got) != 4 {
		t.Fatalf("TasksInWeek returned %d tasks, want 4", len(got))
	}
	for _, tk := range got {
		if tk.ID == "5" {
			t.Error("task from the following week leaked into the view")
		}
	}
}

func TestDayBucketsAndStats(t *testing.T) {
	weekTasks := TasksInWeek(sampleWeek(), anchor)
	buckets := DayBuckets(weekTasks, anchor)

	if len(buckets[0]) != 2 || len(buckets[2]) != 1 || len(buckets[4]) != 1 {
		t.Fatalf("bucket sizes = %d/%d/%d/%d/%d", len(buckets[0]), len(buckets[1]), len(buckets[2]), len(buckets[3]), len(buckets[4]))
	}

	monday := PerDayStats(buckets[0])
	if monday.Count != 2 || monday.AvgProgress != 25 || monday.Done != 0 {
		t.Errorf("Monday stats = %+v, want count 2 avg 25 done 0", monday)
	}

	wednesday := PerDayStats(buckets[2])
	if wednesday.Count != 1 || wednesday.AvgProgress != 100 || wednesday.Done != 1 {
		t.Errorf("Wednesday stats = %+v", wednesday)
	}

	empty := PerDayStats(buckets[1])
	if empty.Count != 0 || empty.AvgProgress != 0 || empty.Done != 0 {
		t.Errorf("empty bucket stats = %+v, want zeros", empty)
	}
}

func TestPerDayStatsScenario(t *testing.T) {
	// A lone Monday task at 50%: count=1, avg=50, done=0.
	weekTasks := []task.Task{{DateISO: "2024-06-10", Title: "Plan", Dept: "IT", Owner: "Ana", Progress: 50}}
	buckets := DayBuckets(weekTasks, anchor)
	st := PerDayStats(buckets[0])
	if st.Count != 1 || st.AvgProgress != 50 || st.Done != 0 {
		t.Errorf("stats = %+v, want {1 50 0}", st)
	}
}

func TestDoneCountsExplicitStatusAtPartialProgress(t *testing.T) {
	bucket := []task.Task{
		{Progress: 40, Status: task.StatusDone}, // explicit Hecho
	}
	st := PerDayStats(bucket)
	if st.Done != 1 {
		t.Errorf("Done = %d, want 1 (explicit Hecho counts regardless of progress)", st.Done)
	}
}

func TestWeekStats(t *testing.T) {
	weekTasks := TasksInWeek(sampleWeek(), anchor)
	st := WeekStatsOf(weekTasks)
	if st.Total != 4 {
		t.Errorf("Total = %d, want 4", st.Total)
	}
	// (50+0+100+90)/4 = 60
	if st.AvgProgress != 60 {
		t.Errorf("AvgProgress = %d, want 60", st.AvgProgress)
	}

	if st := WeekStatsOf(nil); st.Total != 0 || st.AvgProgress != 0 {
		t.Errorf("empty week stats = %+v", st)
	}
}

func TestChart(t *testing.T) {
	weekTasks := TasksInWeek(sampleWeek(), anchor)
	data := Chart(weekTasks, anchor)

	wantLabels := [5]string{"Lunes", "Martes", "Miércoles", "Jueves", "Viernes"}
	if data.Labels != wantLabels {
		t.Errorf("Labels = %v", data.Labels)
	}
	if data.Counts != [5]int{2, 0, 1, 0, 1} {
		t.Errorf("Counts = %v", data.Counts)
	}
	if data.AvgProgress != [5]int{25, 0, 100, 0, 90} {
		t.Errorf("AvgProgress = %v", data.AvgProgress)
	}
}

func TestDistinctVocabularies(t *testing.T) {
	weekTasks := TasksInWeek(sampleWeek(), anchor)

	if got := Depts(weekTasks); !reflect.DeepEqual(got, []string{"IT", "RH"}) {
		t.Errorf("Depts = %v", got)
	}
	if got := Owners(weekTasks); !reflect.DeepEqual(got, []string{"Ana", "Carlos", "María"}) {
		t.Errorf("Owners = %v", got)
	}

	// Empty values are excluded from the vocabulary.
	withEmpty := append(weekTasks, task.Task{DateISO: "2024-06-10", Title: "X"})
	if got := Depts(withEmpty); !reflect.DeepEqual(got, []string{"IT", "RH"}) {
		t.Errorf("Depts with empty value = %v", got)
	}
}

func TestFilterApply(t *testing.T) {
	weekTasks := TasksInWeek(sampleWeek(), anchor)

	got := Filter{Dept: "RH"}.Apply(weekTasks)
	if len(got) != 2 {
		t.Fatalf("Dept filter returned %d tasks", len(got))
	}

	got = Filter{Owner: "Ana", Status: task.StatusInProgress}.Apply(weekTasks)
	if len(got) != 2 {
		t.Fatalf("combined filter returned %d tasks", len(got))
	}

	// Status filter matches the effective status, not the stored one.
	stale := []task.Task{{DateISO: "2024-06-10", Title: "Full", Progress: 100, Status: task.StatusInProgress}}
	got = Filter{Status: task.StatusDone}.Apply(stale)
	if len(got) != 1 {
		t.Error("task at 100% did not match the Hecho filter")
	}
}

func TestSortBoardDeterministic(t *testing.T) {
	tasks := []task.Task{
		{DateISO: "2024-06-12", Title: "B"},
		{DateISO: "2024-06-10", Title: "Z"},
		{DateISO: "2024-06-10", Title: "A"},
	}
	SortBoard(tasks)
	order := []string{tasks[0].Title, tasks[1].Title, tasks[2].Title}
	if !reflect.DeepEqual(order, []string{"A", "Z", "B"}) {
		t.Errorf("board order = %v", order)
	}
}

func TestSortListGroupsByStatusThenPriority(t *testing.T) {
	tasks := []task.Task{
		{DateISO: "2024-06-10", Title: "done", Progress: 100},
		{DateISO: "2024-06-10", Title: "urgent", Status: task.StatusPending, Priority: task.PriorityHigh},
		{DateISO: "2024-06-10", Title: "rolling", Progress: 30, Status: task.StatusInProgress, Priority: task.PriorityMedium},
		{DateISO: "2024-06-10", Title: "later", Status: task.StatusPending, Priority: task.PriorityLow},
	}
	SortList(tasks)
	order := []string{tasks[0].Title, tasks[1].Title, tasks[2].Title, tasks[3].Title}
	if !reflect.DeepEqual(order, []string{"urgent", "later", "rolling", "done"}) {
		t.Errorf("list order = %v", order)
	}
}
