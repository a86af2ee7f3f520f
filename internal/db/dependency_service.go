package db

import (
	"sort"

	"gorm.io/gorm/clause"

	"github.com/taskboard-io/taskboard/internal/models"
)

// AddDependency inserts the directed edge task -> dependsOn. Inserting an
// edge that already exists is a silent no-op (conflict on the composite
// key does nothing), which makes concurrent inserts safe. Neither end is
// validated here and cycles are not detected; referential integrity is
// the schema's job.
func AddDependency(taskID, dependsOnID uint) error {
	edge := models.TaskDependency{
		TaskID:      taskID,
		DependsOnID: dependsOnID,
	}
	return DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&edge).Error
}

// RemoveDependency deletes the edge task -> dependsOn. Returns whether an
// edge was actually removed; removing an absent edge is not an error.
func RemoveDependency(taskID, dependsOnID uint) (bool, error) {
	res := DB.Where("task_id = ? AND depends_on_id = ?", taskID, dependsOnID).
		Delete(&models.TaskDependency{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// GetDependenciesOf returns the edges where the task is the dependent
// side: everything it depends on.
func GetDependenciesOf(taskID uint) ([]models.TaskDependency, error) {
	var edges []models.TaskDependency
	if err := DB.Where("task_id = ?", taskID).Find(&edges).Error; err != nil {
		return nil, err
	}
	return edges, nil
}

// GetDependentsOf returns the edges where the task is the depended-upon
// side: everything that depends on it.
func GetDependentsOf(taskID uint) ([]models.TaskDependency, error) {
	var edges []models.TaskDependency
	if err := DB.Where("depends_on_id = ?", taskID).Find(&edges).Error; err != nil {
		return nil, err
	}
	return edges, nil
}

// GetDependencyTasksOf returns the full task records this task depends
// on, ordered by deadline.
func GetDependencyTasksOf(taskID uint) ([]models.Task, error) {
	var tasks []models.Task
	err := DB.
		Joins("JOIN task_dependencies ON task_dependencies.depends_on_id = tasks.id").
		Where("task_dependencies.task_id = ?", taskID).
		Order("tasks.deadline").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// GetAllRelations returns the unioned dependency view for a task: the
// tasks it depends on, the tasks that depend on it, and the task itself,
// sorted by deadline ascending. A task reachable through both directions
// shows up once per relation kind; the task itself appears exactly once
// under the self kind. Returns nil when the task does not exist.
func GetAllRelations(taskID uint) ([]models.TaskRelation, error) {
	self, err := GetTaskByID(taskID)
	if err != nil || self == nil {
		return nil, err
	}

	var relations []models.TaskRelation

	dependsOn, err := GetDependencyTasksOf(taskID)
	if err != nil {
		return nil, err
	}
	for _, t := range dependsOn {
		relations = append(relations, relationRow(t, models.RelationDependsOf))
	}

	dependents, err := GetDependentsOf(taskID)
	if err != nil {
		return nil, err
	}
	for _, edge := range dependents {
		t, err := GetTaskByID(edge.TaskID)
		if err != nil {
			return nil, err
		}
		if t == nil {
			continue
		}
		relations = append(relations, relationRow(*t, models.RelationDependentFor))
	}

	relations = append(relations, relationRow(*self, models.RelationSelf))

	sort.SliceStable(relations, func(i, j int) bool {
		return relations[i].Deadline.Before(relations[j].Deadline)
	})
	return relations, nil
}

func relationRow(t models.Task, kind models.RelationKind) models.TaskRelation {
	return models.TaskRelation{
		TaskID:            t.ID,
		Kind:              kind,
		Title:             t.Title,
		Deadline:          t.Deadline,
		ResponsibleUserID: t.ResponsibleUserID,
	}
}
