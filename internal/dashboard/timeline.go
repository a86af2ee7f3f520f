package dashboard

import (
	"time"

	"github.com/taskboard-io/taskboard/internal/models"
	"github.com/taskboard-io/taskboard/internal/warnings"
)

// PrerequisiteLookup returns the full task records a task depends on.
// The timeline needs them to detect crossed deadlines.
type PrerequisiteLookup func(taskID uint) ([]models.Task, error)

// TimelineTask is one timeline row: the display date window plus the
// crossed-deadline-aware warnings.
type TimelineTask struct {
	ID          uint               `json:"id"`
	Status      models.TaskStatus  `json:"status"`
	Title       string             `json:"title"`
	Deadline    time.Time          `json:"deadline"`
	Start       time.Time          `json:"start"`
	Finish      time.Time          `json:"finish"`
	Responsible *Party             `json:"responsible"`
	Warnings    []warnings.Warning `json:"warnings"`
}

// BuildTimeline assembles the timeline view from tasks already ordered by
// deadline ascending. Each row carries actual dates when recorded and the
// planned window otherwise.
func BuildTimeline(tasks []models.Task, parties PartyLookup, prerequisites PrerequisiteLookup, today time.Time, reserveCoef float64) ([]TimelineTask, error) {
	rows := make([]TimelineTask, 0, len(tasks))

	for _, t := range tasks {
		responsible, err := resolveParty(parties, t.ResponsibleUserID)
		if err != nil {
			return nil, err
		}

		var prereqs []models.Task
		if prerequisites != nil {
			prereqs, err = prerequisites(t.ID)
			if err != nil {
				return nil, err
			}
		}

		warns, err := warnings.EvaluateWithCrossings(t, today, reserveCoef, prereqs)
		if err != nil {
			return nil, err
		}

		start, finish := warnings.StartFinish(t)
		rows = append(rows, TimelineTask{
			ID:          t.ID,
			Status:      t.Status,
			Title:       t.Title,
			Deadline:    t.Deadline,
			Start:       start,
			Finish:      finish,
			Responsible: responsible,
			Warnings:    warns,
		})
	}

	return rows, nil
}
