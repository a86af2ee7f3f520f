// Package dashboard composes per-task warning evaluation into the
// status-grouped dashboard view and the schedule timeline view.
package dashboard

import (
	"sort"
	"time"

	"github.com/taskboard-io/taskboard/internal/models"
	"github.com/taskboard-io/taskboard/internal/warnings"
)

// PartyLookup resolves a responsible user. A (nil, nil) result means the
// user is unknown and the responsible field degrades to absent.
type PartyLookup func(id uint) (*models.User, error)

// Party is the responsible-user summary attached to view rows.
type Party struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// Task is one dashboard row.
type Task struct {
	ID          uint               `json:"id"`
	Title       string             `json:"title"`
	Deadline    time.Time          `json:"deadline"`
	Responsible *Party             `json:"responsible"`
	Warnings    []warnings.Warning `json:"warnings"`
}

// StatusGroup holds the tasks of one status, in deadline order.
type StatusGroup struct {
	Status models.TaskStatus `json:"status"`
	Rank   int               `json:"rank"`
	Tasks  []Task            `json:"tasks"`
}

// View is the full dashboard: completion progress plus the status groups
// in their fixed display order.
type View struct {
	Progress int           `json:"progress"`
	Groups   []StatusGroup `json:"groups"`
}

// Build assembles the dashboard from tasks already ordered by deadline
// ascending. Grouping preserves that order within each group; groups are
// emitted in fixed status rank order and only for statuses that are
// present. Progress is floor(done/total*100), and 0 when there are no
// tasks at all.
func Build(tasks []models.Task, lookup PartyLookup, today time.Time, reserveCoef float64) (*View, error) {
	grouped := make(map[models.TaskStatus][]Task)
	doneCount := 0

	for _, t := range tasks {
		responsible, err := resolveParty(lookup, t.ResponsibleUserID)
		if err != nil {
			return nil, err
		}
		warns, err := warnings.Evaluate(t, today, reserveCoef)
		if err != nil {
			return nil, err
		}

		grouped[t.Status] = append(grouped[t.Status], Task{
			ID:          t.ID,
			Title:       t.Title,
			Deadline:    t.Deadline,
			Responsible: responsible,
			Warnings:    warns,
		})
		if t.Status == models.StatusDone {
			doneCount++
		}
	}

	view := &View{Progress: progress(doneCount, len(tasks))}
	for status, groupTasks := range grouped {
		view.Groups = append(view.Groups, StatusGroup{
			Status: status,
			Rank:   status.Rank(),
			Tasks:  groupTasks,
		})
	}
	sort.Slice(view.Groups, func(i, j int) bool {
		return view.Groups[i].Rank < view.Groups[j].Rank
	})

	return view, nil
}

// progress is floor(done/total*100); an empty board reports 0 rather
// than dividing by zero.
func progress(done, total int) int {
	if total == 0 {
		return 0
	}
	return done * 100 / total
}

func resolveParty(lookup PartyLookup, id *uint) (*Party, error) {
	if lookup == nil || id == nil {
		return nil, nil
	}
	user, err := lookup(*id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return &Party{ID: user.ID, Name: user.Name}, nil
}
