package hierarchy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Department.Name
	}
	return out
}

func levels(entries []Entry) []int {
	out := make([]int, len(entries))
	for i, e := range entries {
		out[i] = e.Level
	}
	return out
}

func TestBuild_Chain(t *testing.T) {
	res := Build([]Department{
		{ID: "1", Name: "GM"},
		{ID: "2", Name: "Eng", ParentID: "1"},
		{ID: "3", Name: "Backend", ParentID: "2"},
	})

	assert.Equal(t, []string{"GM", "Eng", "Backend"}, names(res.Flattened))
	assert.Equal(t, []int{0, 1, 2}, levels(res.Flattened))
	assert.Equal(t, "GM", res.RootNameByDepartmentName["Backend"])
	assert.Equal(t, "GM", res.RootNameByDepartmentName["GM"])
	assert.Empty(t, res.Warnings)

	require.Len(t, res.Roots, 1)
	require.Len(t, res.Roots[0].Children, 1)
	require.Len(t, res.Roots[0].Children[0].Children, 1)
	assert.Equal(t, "Backend", res.Roots[0].Children[0].Children[0].Department.Name)
}

func TestBuild_PreOrderKeepsSiblingOrder(t *testing.T) {
	// дочерние записи идут раньше родителя во входе
	res := Build([]Department{
		{ID: "b1", Name: "Site B Civil", ParentID: "b"},
		{ID: "a", Name: "Site A"},
		{ID: "a2", Name: "Site A MEP", ParentID: "a"},
		{ID: "b", Name: "Site B"},
		{ID: "a1", Name: "Site A Civil", ParentID: "a"},
		{ID: "a2x", Name: "Site A MEP Electrical", ParentID: "a2"},
	})

	assert.Equal(t, []string{
		"Site A", "Site A MEP", "Site A MEP Electrical", "Site A Civil",
		"Site B", "Site B Civil",
	}, names(res.Flattened))
	assert.Equal(t, []int{0, 1, 2, 1, 0, 1}, levels(res.Flattened))
}

func TestBuild_OrphanParentBecomesRoot(t *testing.T) {
	res := Build([]Department{
		{ID: "1", Name: "GM"},
		{ID: "5", Name: "Ghost", ParentID: "999"},
		{ID: "6", Name: "Ghost Child", ParentID: "5"},
	})

	assert.Equal(t, []string{"GM", "Ghost", "Ghost Child"}, names(res.Flattened))
	assert.Equal(t, []int{0, 0, 1}, levels(res.Flattened))
	assert.Equal(t, "Ghost", res.RootNameByDepartmentName["Ghost"])
	assert.Equal(t, "Ghost", res.RootNameByDepartmentName["Ghost Child"])
	assert.Empty(t, res.Warnings)
}

func TestBuild_Idempotent(t *testing.T) {
	input := []Department{
		{ID: "1", Name: "GM"},
		{ID: "2", Name: "Eng", ParentID: "1"},
		{ID: "3", Name: "Finance", ParentID: "1"},
		{ID: "4", Name: "Backend", ParentID: "2"},
	}

	first := Build(input)
	second := Build(input)

	assert.Equal(t, first.Flattened, second.Flattened)
	assert.Equal(t, first.RootNameByDepartmentName, second.RootNameByDepartmentName)
}

func TestBuild_TwoNodeCycleTerminates(t *testing.T) {
	res := Build([]Department{
		{ID: "1", Name: "GM"},
		{ID: "a", Name: "A", ParentID: "b"},
		{ID: "b", Name: "B", ParentID: "a"},
		{ID: "c", Name: "C", ParentID: "b"},
	})

	assert.Equal(t, []string{"GM", "A", "B", "C"}, names(res.Flattened))
	assert.Equal(t, []int{0, 0, 1, 2}, levels(res.Flattened))
	assert.Equal(t, "A", res.RootNameByDepartmentName["B"])
	assert.Equal(t, "A", res.RootNameByDepartmentName["C"])

	require.Len(t, res.Warnings, 1)
	assert.Equal(t, "a", res.Warnings[0].DepartmentID)
}

func TestBuild_CycleDescendantListedFirst(t *testing.T) {
	descendantFirst := Build([]Department{
		{ID: "c", Name: "C", ParentID: "a"},
		{ID: "a", Name: "A", ParentID: "b"},
		{ID: "b", Name: "B", ParentID: "a"},
	})

	assert.Equal(t, []string{"A", "C", "B"}, names(descendantFirst.Flattened))
	assert.Equal(t, []int{0, 1, 1}, levels(descendantFirst.Flattened))
	assert.Equal(t, "A", descendantFirst.RootOf("C"))
	require.Len(t, descendantFirst.Roots, 1)
	require.Len(t, descendantFirst.Warnings, 1)
	assert.Equal(t, "a", descendantFirst.Warnings[0].DepartmentID)

	cycleFirst := Build([]Department{
		{ID: "a", Name: "A", ParentID: "b"},
		{ID: "b", Name: "B", ParentID: "a"},
		{ID: "c", Name: "C", ParentID: "a"},
	})

	assert.Equal(t, descendantFirst.RootNameByDepartmentName, cycleFirst.RootNameByDepartmentName)
	assert.Equal(t, descendantFirst.Warnings, cycleFirst.Warnings)
	assert.Equal(t, []int{0, 1, 1}, levels(cycleFirst.Flattened))
}

func TestBuild_SelfReference(t *testing.T) {
	res := Build([]Department{
		{ID: "1", Name: "Loop", ParentID: "1"},
		{ID: "2", Name: "Below", ParentID: "1"},
	})

	assert.Equal(t, []string{"Loop", "Below"}, names(res.Flattened))
	assert.Equal(t, []int{0, 1}, levels(res.Flattened))
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, "Loop", res.Warnings[0].DepartmentName)
}

func TestBuild_EveryDepartmentAppearsOnce(t *testing.T) {
	input := []Department{
		{ID: "1", Name: "R"},
		{ID: "2", Name: "X", ParentID: "3"},
		{ID: "3", Name: "Y", ParentID: "4"},
		{ID: "4", Name: "Z", ParentID: "2"},
		{ID: "5", Name: "Q", ParentID: "1"},
	}

	res := Build(input)

	assert.Len(t, res.Flattened, len(input))
	seen := map[string]int{}
	for _, e := range res.Flattened {
		seen[e.Department.ID]++
	}
	for _, d := range input {
		assert.Equal(t, 1, seen[d.ID], d.ID)
	}
	assert.Len(t, res.RootNameByDepartmentName, len(input))
}

func TestBuild_Empty(t *testing.T) {
	res := Build(nil)
	assert.Empty(t, res.Flattened)
	assert.Empty(t, res.Roots)
	assert.Empty(t, res.RootNameByDepartmentName)
}

func TestResolveRootName(t *testing.T) {
	depts := []Department{
		{ID: "1", Name: "GM"},
		{ID: "2", Name: "Eng", ParentID: "1"},
	}

	assert.Equal(t, "GM", ResolveRootName("Eng", depts))
	assert.Equal(t, "Camp Kitchen", ResolveRootName("Camp Kitchen", depts))
	assert.Equal(t, map[string]string{"GM": "GM", "Eng": "GM"}, BuildRootNameMap(depts))
}
