package todo

import (
	"errors"
	"testing"
	"time"
)

type recordingSaver struct {
	saves int
	last  []Task
	err   error
}

func (r *recordingSaver) Save(tasks []Task) error {
	r.saves++
	r.last = tasks
	return r.err
}

func at(day int) *time.Time {
	t := time.Date(2024, time.March, day, 23, 59, 59, 0, time.Local)
	return &t
}

func texts(tasks []Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.Text
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSortOrder(t *testing.T) {
	tasks := []Task{
		{Text: "done-undated", Completed: true},
		{Text: "open-undated-1"},
		{Text: "open-late", Due: at(20)},
		{Text: "done-early", Completed: true, Due: at(1)},
		{Text: "open-early", Due: at(5)},
		{Text: "open-undated-2"},
		{Text: "open-early-2", Due: at(5)},
	}

	s := NewStore(tasks)

	want := []string{
		"open-early",
		"open-early-2",
		"open-late",
		"open-undated-1",
		"open-undated-2",
		"done-early",
		"done-undated",
	}
	if got := texts(s.Tasks()); !equalStrings(got, want) {
		t.Errorf("Sort order:\n got  %v\n want %v", got, want)
	}
}

func TestSortIsStable(t *testing.T) {
	var tasks []Task
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		tasks = append(tasks, Task{Text: name, Due: at(10)})
	}
	s := NewStore(tasks)
	s.Sort()
	s.Sort()

	want := []string{"a", "b", "c", "d", "e"}
	if got := texts(s.Tasks()); !equalStrings(got, want) {
		t.Errorf("stable sort: got %v, want %v", got, want)
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b Task
		want int
	}{
		{"incomplete first", Task{}, Task{Completed: true}, -1},
		{"completed last", Task{Completed: true, Due: at(1)}, Task{}, 1},
		{"dated before undated", Task{Due: at(9)}, Task{}, -1},
		{"undated after dated", Task{}, Task{Due: at(9)}, 1},
		{"earlier due first", Task{Due: at(2)}, Task{Due: at(3)}, -1},
		{"same due equal", Task{Due: at(2)}, Task{Due: at(2)}, 0},
		{"both undated equal", Task{Text: "x"}, Task{Text: "y"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.want {
				t.Errorf("Compare() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestAddRejectsBlankText(t *testing.T) {
	saver := &recordingSaver{}
	s := NewStore([]Task{{Text: "existing"}}, WithSaver(saver))

	for _, text := range []string{"", "   ", "\t\n"} {
		if s.Add(text, nil) {
			t.Errorf("Add(%q) reported a change", text)
		}
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
	if saver.saves != 0 {
		t.Errorf("saves = %d, want 0", saver.saves)
	}
}

func TestAddSortsAndSaves(t *testing.T) {
	saver := &recordingSaver{}
	s := NewStore(nil, WithSaver(saver))

	s.Add("undated", nil)
	s.Add("dated", at(3))

	want := []string{"dated", "undated"}
	if got := texts(s.Tasks()); !equalStrings(got, want) {
		t.Errorf("order after Add: got %v, want %v", got, want)
	}
	if saver.saves != 2 {
		t.Errorf("saves = %d, want 2", saver.saves)
	}
	if got := texts(saver.last); !equalStrings(got, want) {
		t.Errorf("saved order: got %v, want %v", got, want)
	}
	if task, _ := s.At(0); task.Completed {
		t.Error("new task should be incomplete")
	}
}

func TestAddCopiesDueDate(t *testing.T) {
	s := NewStore(nil)
	due := *at(4)
	s.Add("task", &due)
	due = due.AddDate(1, 0, 0)

	task, _ := s.At(0)
	if !task.HasDue() {
		t.Fatal("task lost its due date")
	}
	if !task.Due.Equal(*at(4)) {
		t.Errorf("stored due date changed with caller's value: %v", task.Due)
	}

	s.Add("undated", nil)
	if undated, _ := s.At(1); undated.HasDue() {
		t.Error("task added without a due date reports one")
	}
}

func TestOutOfRangeIsNoop(t *testing.T) {
	saver := &recordingSaver{}
	s := NewStore([]Task{{Text: "a"}, {Text: "b"}}, WithSaver(saver))

	if s.Remove(2) || s.Remove(-1) {
		t.Error("Remove out of range reported a change")
	}
	if s.SetCompleted(5, true) || s.Toggle(-3) {
		t.Error("SetCompleted/Toggle out of range reported a change")
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
	if saver.saves != 0 {
		t.Errorf("saves = %d, want 0", saver.saves)
	}
}

func TestToggleMovesCompletedToEnd(t *testing.T) {
	s := NewStore([]Task{{Text: "a"}, {Text: "b"}, {Text: "c"}})

	if !s.Toggle(0) {
		t.Fatal("Toggle(0) reported no change")
	}
	want := []string{"b", "c", "a"}
	if got := texts(s.Tasks()); !equalStrings(got, want) {
		t.Errorf("after toggle: got %v, want %v", got, want)
	}

	// Reopening keeps the task where it is; ties preserve order.
	s.Toggle(2)
	if got := texts(s.Tasks()); !equalStrings(got, want) {
		t.Errorf("after untoggle: got %v, want %v", got, want)
	}
	if task, _ := s.At(2); task.Completed {
		t.Error("task a should be open again")
	}
}

func TestRemove(t *testing.T) {
	saver := &recordingSaver{}
	s := NewStore([]Task{{Text: "a"}, {Text: "b"}, {Text: "c"}}, WithSaver(saver))

	if !s.Remove(1) {
		t.Fatal("Remove(1) reported no change")
	}
	want := []string{"a", "c"}
	if got := texts(s.Tasks()); !equalStrings(got, want) {
		t.Errorf("after remove: got %v, want %v", got, want)
	}
	if saver.saves != 1 {
		t.Errorf("saves = %d, want 1", saver.saves)
	}
}

func TestBulkOperations(t *testing.T) {
	saver := &recordingSaver{}
	s := NewStore([]Task{{Text: "a"}, {Text: "b", Due: at(2)}, {Text: "c"}}, WithSaver(saver))

	s.SetAllCompleted(true)
	if _, open, done := s.Counts(); open != 0 || done != 3 {
		t.Errorf("after check all: open=%d done=%d", open, done)
	}

	s.SetAllCompleted(false)
	if _, open, done := s.Counts(); open != 3 || done != 0 {
		t.Errorf("after uncheck all: open=%d done=%d", open, done)
	}

	s.SetCompleted(0, true)
	if removed := s.RemoveCompleted(); removed != 1 {
		t.Errorf("RemoveCompleted() = %d, want 1", removed)
	}
	want := []string{"a", "c"}
	if got := texts(s.Tasks()); !equalStrings(got, want) {
		t.Errorf("after clear completed: got %v, want %v", got, want)
	}
	if saver.saves != 4 {
		t.Errorf("saves = %d, want 4", saver.saves)
	}
}

func TestSaveFailureKeepsState(t *testing.T) {
	saver := &recordingSaver{err: errors.New("disk full")}
	s := NewStore(nil, WithSaver(saver))

	if !s.Add("still here", nil) {
		t.Fatal("Add reported no change")
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}

func TestNewStoreDoesNotSave(t *testing.T) {
	saver := &recordingSaver{}
	NewStore([]Task{{Text: "a"}}, WithSaver(saver))
	if saver.saves != 0 {
		t.Errorf("saves = %d, want 0", saver.saves)
	}
}

func TestClassify(t *testing.T) {
	now := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.Local)
	ptr := func(d time.Duration) *time.Time {
		v := now.Add(d)
		return &v
	}

	tests := []struct {
		name string
		due  *time.Time
		want Urgency
	}{
		{"no due date", nil, Neutral},
		{"one second ago", ptr(-time.Second), Overdue},
		{"one hour ahead", ptr(time.Hour), Urgent},
		{"exactly now", ptr(0), Urgent},
		{"just under a day", ptr(24*time.Hour - time.Second), Urgent},
		{"exactly a day", ptr(24 * time.Hour), Neutral},
		{"25 hours ahead", ptr(90000 * time.Second), Neutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.due, now); got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}
