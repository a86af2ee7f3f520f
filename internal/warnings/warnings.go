// Package warnings classifies a task's urgency from its status, dates and
// the configured reserve coefficient. Evaluation is pure and recomputed on
// every read; warnings are never persisted.
package warnings

import (
	"fmt"
	"time"

	"github.com/taskboard-io/taskboard/internal/models"
)

// Type tags a single urgency classification.
type Type string

const (
	// StartSoft: a to_do task is approaching the point where it must be
	// started, with only the configured reserve left beyond the hard
	// threshold.
	StartSoft Type = "start_soft"
	// StartHard: a to_do task must start now to still fit its planned
	// duration before the deadline.
	StartHard Type = "start_hard"
	// FinishSoft: an in_progress task is approaching the point where the
	// remaining work no longer fits before the deadline.
	FinishSoft Type = "finish_soft"
	// FinishHard: an in_progress task has no slack left before its
	// deadline.
	FinishHard Type = "finish_hard"
	// LateDeadline: the deadline has passed, whatever the status.
	LateDeadline Type = "late_deadline"
	// CrossedDeadline: the task's schedule window begins before an
	// unfinished prerequisite is due. Only the timeline evaluation
	// detects this.
	CrossedDeadline Type = "crossed_deadline"
)

// Warning is one urgency classification for one task at evaluation time.
type Warning struct {
	Type   Type `json:"type"`
	TaskID uint `json:"task_id"`
}

// Evaluate computes the warnings for a single task as of today.
// reserveCoef is the fraction in (0, 1] that places the soft threshold
// ahead of the hard one. The hard warning wins when both thresholds have
// been crossed; late_deadline is additive and independent of status.
//
// An in_progress task without an actual start date is a data-integrity
// violation and is returned as an error rather than silently defaulted.
func Evaluate(task models.Task, today time.Time, reserveCoef float64) ([]Warning, error) {
	var warns []Warning
	current := models.DateOf(today)
	deadline := models.DateOf(task.Deadline)

	switch task.Status {
	case models.StatusToDo:
		hard := deadline.AddDate(0, 0, -task.DaysForCompletion)
		soft := deadline.AddDate(0, 0, -reserveDays(task.DaysForCompletion, reserveCoef))
		if !current.Before(hard) {
			warns = append(warns, Warning{Type: StartHard, TaskID: task.ID})
		} else if !current.Before(soft) {
			warns = append(warns, Warning{Type: StartSoft, TaskID: task.ID})
		}

	case models.StatusInProgress:
		if task.ActualStartDate == nil {
			return nil, fmt.Errorf("task #%d is in_progress without an actual start date", task.ID)
		}
		daysInWork := models.DaysBetween(*task.ActualStartDate, current)
		daysToDeadline := task.DaysForCompletion - daysInWork
		if daysToDeadline < 0 {
			daysToDeadline = 0
		}

		hard := deadline.AddDate(0, 0, -daysToDeadline)
		soft := deadline.AddDate(0, 0, -reserveDays(daysToDeadline, reserveCoef))
		if !current.Before(hard) {
			warns = append(warns, Warning{Type: FinishHard, TaskID: task.ID})
		} else if !current.Before(soft) {
			warns = append(warns, Warning{Type: FinishSoft, TaskID: task.ID})
		}

	case models.StatusDone:
		// No status-conditioned warning for finished tasks.
	}

	if current.After(deadline) {
		warns = append(warns, Warning{Type: LateDeadline, TaskID: task.ID})
	}

	return warns, nil
}

// EvaluateWithCrossings is the timeline variant of Evaluate: on top of
// the status-conditioned warnings it reports crossed_deadline when the
// task's schedule window starts before the deadline of a prerequisite
// that is not yet done. At most one crossed_deadline is emitted per task.
func EvaluateWithCrossings(task models.Task, today time.Time, reserveCoef float64, prerequisites []models.Task) ([]Warning, error) {
	warns, err := Evaluate(task, today, reserveCoef)
	if err != nil {
		return nil, err
	}

	start, _ := StartFinish(task)
	for _, p := range prerequisites {
		if p.Status == models.StatusDone {
			continue
		}
		if start.Before(models.DateOf(p.Deadline)) {
			warns = append(warns, Warning{Type: CrossedDeadline, TaskID: task.ID})
			break
		}
	}
	return warns, nil
}

// StartFinish derives the display date window for a task: actual dates
// when recorded, otherwise the planned window of days_for_completion
// ending at the deadline.
func StartFinish(task models.Task) (start, finish time.Time) {
	deadline := models.DateOf(task.Deadline)

	if task.ActualStartDate != nil {
		start = models.DateOf(*task.ActualStartDate)
	} else {
		start = deadline.AddDate(0, 0, -task.DaysForCompletion)
	}

	if task.ActualFinishDate != nil {
		finish = models.DateOf(*task.ActualFinishDate)
	} else {
		finish = deadline
	}
	return start, finish
}

// reserveDays converts a day count into the soft-threshold offset,
// truncating the fractional part the same way calendar arithmetic does.
func reserveDays(days int, reserveCoef float64) int {
	return int(float64(days) * reserveCoef)
}
