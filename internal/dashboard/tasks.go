package dashboard

import (
	"iter"
	"math"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/faizmokh/productify/internal/storage"
)

// TaskStore owns the ordered task list and syncs it after every mutation.
type TaskStore struct {
	adapter *storage.Adapter
	tasks   []Task
	filter  Filter
}

func NewTaskStore(adapter *storage.Adapter) *TaskStore {
	return &TaskStore{adapter: adapter, filter: FilterAll}
}

// Add appends a new pending task. The text is trimmed once; internal
// whitespace is kept as typed, so "a  b" and "a b" are different tasks.
//
// A storage failure is returned after the task has been added in memory.
func (s *TaskStore) Add(text string) (Task, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Task{}, invalid(text, ErrEmptyInput)
	}
	if utf8.RuneCountInString(trimmed) > MaxTaskLength {
		return Task{}, invalid(text, ErrTooLong)
	}
	lower := strings.ToLower(trimmed)
	for _, existing := range s.tasks {
		if strings.ToLower(existing.Text) == lower {
			return Task{}, invalid(text, ErrDuplicateTask)
		}
	}

	task := Task{Text: trimmed}
	s.tasks = append(s.tasks, task)
	return task, s.save()
}

// Toggle flips the completed flag of the task at index (0-based).
func (s *TaskStore) Toggle(index int) (Task, error) {
	if index < 0 || index >= len(s.tasks) {
		return Task{}, ErrIndexOutOfRange
	}
	s.tasks[index].Completed = !s.tasks[index].Completed
	return s.tasks[index], s.save()
}

// Delete removes the task at index (0-based) and returns it.
func (s *TaskStore) Delete(index int) (Task, error) {
	if index < 0 || index >= len(s.tasks) {
		return Task{}, ErrIndexOutOfRange
	}
	task := s.tasks[index]
	s.tasks = slices.Delete(s.tasks, index, index+1)
	return task, s.save()
}

func (s *TaskStore) SetFilter(f Filter) {
	s.filter = f
}

func (s *TaskStore) Filter() Filter {
	return s.filter
}

func (s *TaskStore) Len() int {
	return len(s.tasks)
}

// Tasks returns a copy of the full list in display order.
func (s *TaskStore) Tasks() []Task {
	return slices.Clone(s.tasks)
}

func (s *TaskStore) Stats() Stats {
	stats := Stats{Total: len(s.tasks)}
	for _, t := range s.tasks {
		if t.Completed {
			stats.Completed++
		}
	}
	stats.Pending = stats.Total - stats.Completed
	if stats.Total > 0 {
		stats.PercentComplete = int(math.Round(float64(stats.Completed) / float64(stats.Total) * 100))
	}
	return stats
}

// Visible yields the tasks that match the current filter with their list
// index, in list order. Each range re-reads the list.
func (s *TaskStore) Visible() iter.Seq2[int, Task] {
	return func(yield func(int, Task) bool) {
		filter := s.filter
		for i, t := range s.tasks {
			if !filter.Matches(t) {
				continue
			}
			if !yield(i, t) {
				return
			}
		}
	}
}

// Load replaces the list with the stored one. Stored data is trusted as is.
func (s *TaskStore) Load() error {
	tasks, ok, err := storage.Load[[]Task](s.adapter, TasksKey)
	if err != nil {
		return err
	}
	if !ok || tasks == nil {
		s.tasks = nil
		return nil
	}
	s.tasks = tasks
	return nil
}

func (s *TaskStore) save() error {
	tasks := s.tasks
	if tasks == nil {
		tasks = []Task{}
	}
	return s.adapter.Save(TasksKey, tasks)
}
