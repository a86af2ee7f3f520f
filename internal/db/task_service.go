package db

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/taskboard-io/taskboard/internal/models"
)

// CreateTaskRequest holds the data needed to create a new task
type CreateTaskRequest struct {
	Title             string
	Description       string
	Deadline          time.Time
	ResponsibleUserID *uint
	DaysForCompletion int
}

// CreateTask creates a new task in to_do status with no actual dates.
func CreateTask(req CreateTaskRequest) (*models.Task, error) {
	if req.DaysForCompletion <= 0 {
		return nil, fmt.Errorf("days for completion must be positive, got %d", req.DaysForCompletion)
	}
	if req.Deadline.IsZero() {
		return nil, fmt.Errorf("deadline is required")
	}

	task := models.Task{
		Status:            models.StatusToDo,
		Title:             req.Title,
		Description:       req.Description,
		Deadline:          models.DateOf(req.Deadline),
		ResponsibleUserID: req.ResponsibleUserID,
		DaysForCompletion: req.DaysForCompletion,
	}

	if err := DB.Create(&task).Error; err != nil {
		return nil, err
	}

	return &task, nil
}

// GetTaskByID retrieves a task by ID. Returns nil without error when the
// task does not exist; callers decide whether absence is fatal.
func GetTaskByID(id uint) (*models.Task, error) {
	var task models.Task
	err := DB.First(&task, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// GetTasksOrderedByDeadline returns tasks sorted by deadline ascending.
// Archived tasks are excluded unless includeArchived is set.
func GetTasksOrderedByDeadline(includeArchived bool) ([]models.Task, error) {
	var tasks []models.Task
	q := DB.Order("deadline")
	if !includeArchived {
		q = q.Where("archived = ?", false)
	}
	if err := q.Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// UpdateTaskData updates the main editable fields of a task. Returns the
// updated task, or nil when the task does not exist.
func UpdateTaskData(id uint, title, description string, deadline time.Time, responsibleUserID *uint, daysForCompletion int) (*models.Task, error) {
	if daysForCompletion <= 0 {
		return nil, fmt.Errorf("days for completion must be positive, got %d", daysForCompletion)
	}

	task, err := GetTaskByID(id)
	if err != nil || task == nil {
		return nil, err
	}

	task.Title = title
	task.Description = description
	task.Deadline = models.DateOf(deadline)
	task.ResponsibleUserID = responsibleUserID
	task.DaysForCompletion = daysForCompletion

	if err := DB.Save(task).Error; err != nil {
		return nil, err
	}
	return task, nil
}

// UpdateTaskStatus changes only the status of a task. Returns the updated
// task, or nil when the task does not exist.
func UpdateTaskStatus(id uint, status models.TaskStatus) (*models.Task, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("unknown status %q", status)
	}

	task, err := GetTaskByID(id)
	if err != nil || task == nil {
		return nil, err
	}

	task.Status = status
	if err := DB.Save(task).Error; err != nil {
		return nil, err
	}
	return task, nil
}

// UpdateTaskActualDates sets the actual start and finish dates and keeps
/// the derived completion-day count in sync: (finish - start) + 1 inclusive
// days when both dates are set, unset otherwise. Returns false when the
// task does not exist.
func UpdateTaskActualDates(id uint, start, finish *time.Time) (bool, error) {
	task, err := GetTaskByID(id)
	if err != nil {
		return false, err
	}
	if task == nil {
		return false, nil
	}

	var completionDays *int
	if start != nil && finish != nil {
		d := models.DaysBetween(*start, *finish) + 1
		completionDays = &d
	}
	if start != nil {
		s := models.DateOf(*start)
		start = &s
	}
	if finish != nil {
		f := models.DateOf(*finish)
		finish = &f
	}

	task.ActualStartDate = start
	task.ActualFinishDate = finish
	task.ActualCompletionDays = completionDays

	if err := DB.Save(task).Error; err != nil {
		return false, err
	}
	return true, nil
}

// UpdateTaskArchived flips the archive flag. Returns false when the task
// does not exist.
func UpdateTaskArchived(id uint, archived bool) (bool, error) {
	res := DB.Model(&models.Task{}).Where("id = ?", id).Update("archived", archived)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// UpdateTaskDeadline moves the deadline of a task. Returns false when the
// task does not exist.
func UpdateTaskDeadline(id uint, deadline time.Time) (bool, error) {
	res := DB.Model(&models.Task{}).Where("id = ?", id).Update("deadline", models.DateOf(deadline))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// StartTask moves a to_do task into in_progress and stamps its actual
// start date.
func StartTask(id uint, today time.Time) (*models.Task, error) {
	task, err := GetTaskByID(id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, fmt.Errorf("task #%d not found", id)
	}
	if task.Status != models.StatusToDo {
		return nil, fmt.Errorf("task #%d is %s, only to_do tasks can be started", id, task.Status)
	}

	start := models.DateOf(today)
	task.Status = models.StatusInProgress
	task.ActualStartDate = &start

	if err := DB.Save(task).Error; err != nil {
		return nil, err
	}
	return task, nil
}

// FinishTask moves an in_progress task to done, stamps the actual finish
// date and records the derived completion-day count.
func FinishTask(id uint, today time.Time) (*models.Task, error) {
	task, err := GetTaskByID(id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, fmt.Errorf("task #%d not found", id)
	}
	if task.Status != models.StatusInProgress {
		return nil, fmt.Errorf("task #%d is %s, only in_progress tasks can be finished", id, task.Status)
	}
	if task.ActualStartDate == nil {
		return nil, fmt.Errorf("task #%d is in progress but has no actual start date", id)
	}

	finish := models.DateOf(today)
	days := models.DaysBetween(*task.ActualStartDate, finish) + 1
	task.Status = models.StatusDone
	task.ActualFinishDate = &finish
	task.ActualCompletionDays = &days

	if err := DB.Save(task).Error; err != nil {
		return nil, err
	}
	return task, nil
}

// ReopenTask moves a task back to to_do and clears its actual dates.
func ReopenTask(id uint) (*models.Task, error) {
	task, err := GetTaskByID(id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, fmt.Errorf("task #%d not found", id)
	}
	if task.Status == models.StatusToDo {
		return nil, fmt.Errorf("task #%d is already to_do", id)
	}

	task.Status = models.StatusToDo
	task.ActualStartDate = nil
	task.ActualFinishDate = nil
	task.ActualCompletionDays = nil

	if err := DB.Save(task).Error; err != nil {
		return nil, err
	}
	return task, nil
}

// ClearResponsibleUser removes the responsible reference from every task
// owned by the given user. Returns whether any task was affected.
func ClearResponsibleUser(userID uint) (bool, error) {
	res := DB.Model(&models.Task{}).
		Where("responsible_user_id = ?", userID).
		Update("responsible_user_id", nil)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
