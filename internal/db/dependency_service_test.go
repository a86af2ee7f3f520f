package db

import (
	"testing"

	"github.com/taskboard-io/taskboard/internal/models"
)

func TestAddDependency_Idempotent(t *testing.T) {
	setupTestDB(t)
	a := mustCreateTask(t, "a", day(10), 2)
	b := mustCreateTask(t, "b", day(5), 2)

	if err := AddDependency(a, b); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	if err := AddDependency(a, b); err != nil {
		t.Fatalf("duplicate add should be a no-op, got: %v", err)
	}

	edges, err := GetDependenciesOf(a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(edges) != 1 {
		t.Errorf("edge count = %d, want 1", len(edges))
	}
}

func TestRemoveDependency(t *testing.T) {
	setupTestDB(t)
	a := mustCreateTask(t, "a", day(10), 2)
	b := mustCreateTask(t, "b", day(5), 2)

	if err := AddDependency(a, b); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	removed, err := RemoveDependency(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !removed {
		t.Error("expected removal of existing edge to report true")
	}

	// Removing again reports no effect and leaves the edge set unchanged.
	removed, err = RemoveDependency(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if removed {
		t.Error("expected removal of absent edge to report false")
	}

	edges, err := GetDependenciesOf(a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(edges) != 0 {
		t.Errorf("edge count = %d, want 0", len(edges))
	}
}

func TestGetDependenciesAndDependents(t *testing.T) {
	setupTestDB(t)
	a := mustCreateTask(t, "a", day(10), 2)
	b := mustCreateTask(t, "b", day(5), 2)
	c := mustCreateTask(t, "c", day(7), 2)

	// a depends on b and c; c depends on b.
	for _, edge := range [][2]uint{{a, b}, {a, c}, {c, b}} {
		if err := AddDependency(edge[0], edge[1]); err != nil {
			t.Fatalf("add failed: %v", err)
		}
	}

	deps, err := GetDependenciesOf(a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(deps) != 2 {
		t.Errorf("dependencies of a = %d, want 2", len(deps))
	}

	dependents, err := GetDependentsOf(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(dependents) != 2 {
		t.Errorf("dependents of b = %d, want 2", len(dependents))
	}

	tasks, err := GetDependencyTasksOf(a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("dependency tasks of a = %d, want 2", len(tasks))
	}
	// Ordered by deadline: b (day 5) before c (day 7).
	if tasks[0].ID != b || tasks[1].ID != c {
		t.Errorf("dependency tasks order = [%d %d], want [%d %d]", tasks[0].ID, tasks[1].ID, b, c)
	}
}

func TestGetAllRelations(t *testing.T) {
	setupTestDB(t)
	a := mustCreateTask(t, "a", day(10), 2)
	b := mustCreateTask(t, "b", day(5), 2)
	c := mustCreateTask(t, "c", day(20), 2)

	// a depends on b; c depends on a.
	if err := AddDependency(a, b); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := AddDependency(c, a); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	relations, err := GetAllRelations(a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(relations) != 3 {
		t.Fatalf("relation count = %d, want 3", len(relations))
	}

	// Sorted by deadline: b (5), a itself (10), c (20).
	wantKinds := []models.RelationKind{
		models.RelationDependsOf,
		models.RelationSelf,
		models.RelationDependentFor,
	}
	wantIDs := []uint{b, a, c}
	for i := range relations {
		if relations[i].TaskID != wantIDs[i] || relations[i].Kind != wantKinds[i] {
			t.Errorf("relation[%d] = (%d, %s), want (%d, %s)",
				i, relations[i].TaskID, relations[i].Kind, wantIDs[i], wantKinds[i])
		}
	}
}

func TestGetAllRelations_SelfExactlyOnce(t *testing.T) {
	setupTestDB(t)
	a := mustCreateTask(t, "a", day(10), 2)
	b := mustCreateTask(t, "b", day(5), 2)

	// Mutual dependency: b appears under both directions, self stays single.
	if err := AddDependency(a, b); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := AddDependency(b, a); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	relations, err := GetAllRelations(a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	selfCount := 0
	bCount := 0
	for _, r := range relations {
		if r.Kind == models.RelationSelf {
			selfCount++
			if r.TaskID != a {
				t.Errorf("self relation points at task %d, want %d", r.TaskID, a)
			}
		}
		if r.TaskID == b {
			bCount++
		}
	}
	if selfCount != 1 {
		t.Errorf("self count = %d, want exactly 1", selfCount)
	}
	if bCount != 2 {
		t.Errorf("task b relation count = %d, want one per direction", bCount)
	}
}

func TestGetAllRelations_UnknownTask(t *testing.T) {
	setupTestDB(t)

	relations, err := GetAllRelations(12345)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if relations != nil {
		t.Errorf("relations = %v, want nil for unknown task", relations)
	}
}
