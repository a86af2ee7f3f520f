package models

import (
	"time"
)

// TaskStatus is the lifecycle state of a task.
type TaskStatus string

const (
	StatusToDo       TaskStatus = "to_do"
	StatusInProgress TaskStatus = "in_progress"
	StatusDone       TaskStatus = "done"
)

// Rank returns the fixed display order for a status group:
// to_do < in_progress < done.
func (s TaskStatus) Rank() int {
	switch s {
	case StatusToDo:
		return 1
	case StatusInProgress:
		return 2
	case StatusDone:
		return 3
	}
	return 0
}

// Valid reports whether s is one of the known statuses.
func (s TaskStatus) Valid() bool {
	switch s {
	case StatusToDo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// Task represents a tracked work item with a deadline and planned duration.
type Task struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Status            TaskStatus `gorm:"not null;default:to_do" json:"status"`
	Title             string     `json:"title"`
	Description       string     `json:"description"`
	Deadline          time.Time  `gorm:"not null" json:"deadline"`
	ResponsibleUserID *uint      `json:"responsible_user_id"`
	DaysForCompletion int        `gorm:"not null" json:"days_for_completion"`

	ActualStartDate      *time.Time `json:"actual_start_date"`
	ActualFinishDate     *time.Time `json:"actual_finish_date"`
	ActualCompletionDays *int       `json:"actual_completion_days"` // derived, inclusive day count
	Archived             bool       `gorm:"default:false" json:"archived"`
}

// TaskDependency is a directed edge: TaskID depends on DependsOnID
// completing first. The pair is unique; duplicates are rejected by the
// composite primary key.
type TaskDependency struct {
	TaskID      uint      `gorm:"primaryKey" json:"task_id"`
	DependsOnID uint      `gorm:"primaryKey" json:"depends_on_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// RelationKind classifies a row of a task's dependency view.
type RelationKind string

const (
	RelationDependsOf    RelationKind = "depends_of"    // a task this one depends on
	RelationDependentFor RelationKind = "dependent_for" // a task that depends on this one
	RelationSelf         RelationKind = "self"
)

// TaskRelation is one row of the unioned dependency view for a task.
type TaskRelation struct {
	TaskID            uint         `json:"task_id"`
	Kind              RelationKind `json:"kind"`
	Title             string       `json:"title"`
	Deadline          time.Time    `json:"deadline"`
	ResponsibleUserID *uint        `json:"responsible_user_id"`
}

// DateOf truncates t to a calendar date (midnight UTC). All deadline and
// day arithmetic in the engine works on dates normalized this way.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of calendar days from a to b
// (negative when b is before a).
func DaysBetween(a, b time.Time) int {
	return int(DateOf(b).Sub(DateOf(a)).Hours() / 24)
}
