package models

import (
	"testing"
	"time"
)

func TestTaskStatusRank(t *testing.T) {
	if StatusToDo.Rank() >= StatusInProgress.Rank() {
		t.Error("to_do must rank before in_progress")
	}
	if StatusInProgress.Rank() >= StatusDone.Rank() {
		t.Error("in_progress must rank before done")
	}
	if TaskStatus("bogus").Rank() != 0 {
		t.Error("unknown status must rank 0")
	}
}

func TestTaskStatusValid(t *testing.T) {
	for _, s := range []TaskStatus{StatusToDo, StatusInProgress, StatusDone} {
		if !s.Valid() {
			t.Errorf("%s should be valid", s)
		}
	}
	if TaskStatus("archived").Valid() {
		t.Error("unknown status should not be valid")
	}
}

func TestDateOf(t *testing.T) {
	in := time.Date(2026, 3, 15, 18, 45, 12, 99, time.UTC)
	want := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	if got := DateOf(in); !got.Equal(want) {
		t.Errorf("DateOf = %v, want %v", got, want)
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name string
		a, b time.Time
		want int
	}{
		{
			name: "same day",
			a:    time.Date(2026, 3, 15, 1, 0, 0, 0, time.UTC),
			b:    time.Date(2026, 3, 15, 23, 0, 0, 0, time.UTC),
			want: 0,
		},
		{
			name: "forward",
			a:    time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
			b:    time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC),
			want: 5,
		},
		{
			name: "backward",
			a:    time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC),
			b:    time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
			want: -5,
		},
		{
			name: "across month boundary",
			a:    time.Date(2026, 1, 30, 0, 0, 0, 0, time.UTC),
			b:    time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC),
			want: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysBetween(tt.a, tt.b); got != tt.want {
				t.Errorf("DaysBetween = %d, want %d", got, tt.want)
			}
		})
	}
}
