package warnings

import (
	"testing"
	"time"

	"github.com/taskboard-io/taskboard/internal/models"
)

// day returns an absolute date for "day n" of the test calendar.
func day(n int) time.Time {
	return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func ptr(t time.Time) *time.Time { return &t }

func types(warns []Warning) []Type {
	out := make([]Type, 0, len(warns))
	for _, w := range warns {
		out = append(out, w.Type)
	}
	return out
}

func TestEvaluate_ToDo(t *testing.T) {
	task := models.Task{
		ID:                1,
		Status:            models.StatusToDo,
		Deadline:          day(30),
		DaysForCompletion: 10,
	}

	tests := []struct {
		name  string
		today time.Time
		coef  float64
		want  []Type
	}{
		{
			// planned start = day 20, today at the threshold
			name:  "at planned start fires start_hard",
			today: day(20),
			coef:  0.5,
			want:  []Type{StartHard},
		},
		{
			name:  "after planned start fires start_hard",
			today: day(25),
			coef:  0.5,
			want:  []Type{StartHard},
		},
		{
			name:  "well before planned start fires nothing",
			today: day(16),
			coef:  0.5,
			want:  nil,
		},
		{
			name:  "day before planned start fires nothing",
			today: day(19),
			coef:  0.5,
			want:  nil,
		},
		{
			name:  "past deadline adds late_deadline",
			today: day(31),
			coef:  0.5,
			want:  []Type{StartHard, LateDeadline},
		},
		{
			name:  "on the deadline itself no late warning",
			today: day(30),
			coef:  0.5,
			want:  []Type{StartHard},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Evaluate(task, tt.today, tt.coef)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			assertTypes(t, got, tt.want)
			for _, w := range got {
				if w.TaskID != task.ID {
					t.Errorf("warning carries task %d, want %d", w.TaskID, task.ID)
				}
			}
		})
	}
}

func TestEvaluate_StartHardImpliesPlannedStartReached(t *testing.T) {
	// Property: start_hard ⇒ today >= deadline - days_for_completion,
	// and start_soft never fires when the hard condition holds.
	task := models.Task{
		ID:                7,
		Status:            models.StatusToDo,
		Deadline:          day(40),
		DaysForCompletion: 8,
	}
	plannedStart := day(32)

	for offset := -15; offset <= 15; offset++ {
		today := day(40 + offset)
		warns, err := Evaluate(task, today, 0.5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		hard := hasType(warns, StartHard)
		soft := hasType(warns, StartSoft)

		if hard && today.Before(plannedStart) {
			t.Errorf("start_hard at %v, before planned start %v", today, plannedStart)
		}
		if hard && soft {
			t.Errorf("start_soft and start_hard both fired at %v", today)
		}
	}
}

func TestEvaluate_InProgress(t *testing.T) {
	// Task B from the deadline model: started day 10, 5 planned days,
	// deadline day 20.
	task := models.Task{
		ID:                2,
		Status:            models.StatusInProgress,
		Deadline:          day(20),
		DaysForCompletion: 5,
		ActualStartDate:   ptr(day(10)),
	}

	tests := []struct {
		name  string
		today time.Time
		want  []Type
	}{
		{
			// days_in_work=6 exceeds plan, days_to_deadline clamps to 0,
			// hard threshold is the deadline itself
			name:  "overrun clamps threshold to deadline",
			today: day(16),
			want:  nil,
		},
		{
			name:  "on the deadline fires finish_hard",
			today: day(20),
			want:  []Type{FinishHard},
		},
		{
			name:  "after the deadline late_deadline is additive",
			today: day(21),
			want:  []Type{FinishHard, LateDeadline},
		},
		{
			name:  "slack remaining fires nothing",
			today: day(12),
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Evaluate(task, tt.today, 0.5)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			assertTypes(t, got, tt.want)
		})
	}
}

func TestEvaluate_InProgressBehindSchedule(t *testing.T) {
	// Started late: day 18 with 5 planned days against a day-20 deadline.
	// On day 19 one day is worked, four remain, so the hard threshold is
	// deadline - 4 = day 16, already behind us.
	task := models.Task{
		ID:                8,
		Status:            models.StatusInProgress,
		Deadline:          day(20),
		DaysForCompletion: 5,
		ActualStartDate:   ptr(day(18)),
	}

	got, err := Evaluate(task, day(19), 0.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertTypes(t, got, []Type{FinishHard})
}

func TestEvaluate_InProgressWithoutStartDateIsError(t *testing.T) {
	task := models.Task{
		ID:                3,
		Status:            models.StatusInProgress,
		Deadline:          day(20),
		DaysForCompletion: 5,
	}

	if _, err := Evaluate(task, day(15), 0.5); err == nil {
		t.Fatal("expected error for in_progress task without actual start date")
	}
}

func TestEvaluate_Done(t *testing.T) {
	task := models.Task{
		ID:                4,
		Status:            models.StatusDone,
		Deadline:          day(20),
		DaysForCompletion: 5,
		ActualStartDate:   ptr(day(10)),
		ActualFinishDate:  ptr(day(14)),
	}

	t.Run("no status warning before deadline", func(t *testing.T) {
		got, err := Evaluate(task, day(18), 0.5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assertTypes(t, got, nil)
	})

	t.Run("late_deadline still fires after deadline", func(t *testing.T) {
		got, err := Evaluate(task, day(25), 0.5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assertTypes(t, got, []Type{LateDeadline})
	})
}

func TestEvaluate_LateDeadlineIffPastDeadline(t *testing.T) {
	task := models.Task{
		ID:                5,
		Status:            models.StatusToDo,
		Deadline:          day(10),
		DaysForCompletion: 3,
	}

	for offset := -3; offset <= 3; offset++ {
		today := day(10 + offset)
		warns, err := Evaluate(task, today, 1.0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		late := hasType(warns, LateDeadline)
		if late != (offset > 0) {
			t.Errorf("late_deadline=%v at deadline%+d days", late, offset)
		}
	}
}

func TestEvaluateWithCrossings(t *testing.T) {
	// Task starts (planned) on day 15, prerequisite due day 18.
	task := models.Task{
		ID:                6,
		Status:            models.StatusToDo,
		Deadline:          day(25),
		DaysForCompletion: 10,
	}

	tests := []struct {
		name    string
		prereqs []models.Task
		want    bool
	}{
		{
			name: "unfinished prerequisite due inside window",
			prereqs: []models.Task{
				{ID: 10, Status: models.StatusInProgress, Deadline: day(18), ActualStartDate: ptr(day(12))},
			},
			want: true,
		},
		{
			name: "prerequisite due before window start",
			prereqs: []models.Task{
				{ID: 10, Status: models.StatusToDo, Deadline: day(14)},
			},
			want: false,
		},
		{
			name: "done prerequisite never crosses",
			prereqs: []models.Task{
				{ID: 10, Status: models.StatusDone, Deadline: day(18)},
			},
			want: false,
		},
		{
			name:    "no prerequisites",
			prereqs: nil,
			want:    false,
		},
		{
			name: "multiple crossings emit a single warning",
			prereqs: []models.Task{
				{ID: 10, Status: models.StatusToDo, Deadline: day(18)},
				{ID: 11, Status: models.StatusToDo, Deadline: day(20)},
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EvaluateWithCrossings(task, day(5), 0.5, tt.prereqs)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			count := 0
			for _, w := range got {
				if w.Type == CrossedDeadline {
					count++
				}
			}
			if tt.want && count != 1 {
				t.Errorf("crossed_deadline count = %d, want 1", count)
			}
			if !tt.want && count != 0 {
				t.Errorf("crossed_deadline count = %d, want 0", count)
			}
		})
	}
}

func TestStartFinish(t *testing.T) {
	tests := []struct {
		name       string
		task       models.Task
		wantStart  time.Time
		wantFinish time.Time
	}{
		{
			name: "planned window when no actual dates",
			task: models.Task{
				Status:            models.StatusToDo,
				Deadline:          day(30),
				DaysForCompletion: 10,
			},
			wantStart:  day(20),
			wantFinish: day(30),
		},
		{
			name: "actual start with planned finish",
			task: models.Task{
				Status:            models.StatusInProgress,
				Deadline:          day(30),
				DaysForCompletion: 10,
				ActualStartDate:   ptr(day(22)),
			},
			wantStart:  day(22),
			wantFinish: day(30),
		},
		{
			name: "full actual window",
			task: models.Task{
				Status:            models.StatusDone,
				Deadline:          day(30),
				DaysForCompletion: 10,
				ActualStartDate:   ptr(day(18)),
				ActualFinishDate:  ptr(day(27)),
			},
			wantStart:  day(18),
			wantFinish: day(27),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, finish := StartFinish(tt.task)
			if !start.Equal(tt.wantStart) {
				t.Errorf("start = %v, want %v", start, tt.wantStart)
			}
			if !finish.Equal(tt.wantFinish) {
				t.Errorf("finish = %v, want %v", finish, tt.wantFinish)
			}
		})
	}
}

func assertTypes(t *testing.T, got []Warning, want []Type) {
	t.Helper()
	gotTypes := types(got)
	if len(gotTypes) != len(want) {
		t.Fatalf("warnings = %v, want %v", gotTypes, want)
	}
	for i := range want {
		if gotTypes[i] != want[i] {
			t.Fatalf("warnings = %v, want %v", gotTypes, want)
		}
	}
}

func hasType(warns []Warning, typ Type) bool {
	for _, w := range warns {
		if w.Type == typ {
			return true
		}
	}
	return false
}
