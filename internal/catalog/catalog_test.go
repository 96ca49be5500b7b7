package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLists_UniqueValuesAndLabels(t *testing.T) {
	lists := Lists()
	require.Len(t, lists, len(Names()))

	for _, name := range Names() {
		opts, ok := lists[name]
		require.True(t, ok, name)
		require.NotEmpty(t, opts, name)

		seen := map[string]bool{}
		for _, o := range opts {
			assert.NotEmpty(t, o.Value, name)
			assert.NotEmpty(t, o.Label, name)
			assert.False(t, seen[o.Value], "duplicate value %q in %s", o.Value, name)
			seen[o.Value] = true
		}
	}
}

func TestStressLevels(t *testing.T) {
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, Values(StressLevels()))
}

func TestExperienceLevels_ValueDistinctFromLabel(t *testing.T) {
	for _, o := range ExperienceLevels() {
		assert.NotEqual(t, o.Value, o.Label)
		assert.NotEmpty(t, o.Description)
	}
}

func TestFind(t *testing.T) {
	o, ok := Find(WeeklyHours(), "10-15")
	require.True(t, ok)
	assert.Equal(t, "10-15 hours", o.Label)

	_, ok = Find(WeeklyHours(), "10-15 hours")
	assert.False(t, ok, "labels are not values")
}

func TestAccessorsReturnCopies(t *testing.T) {
	s := Semesters()
	s[0].Value = "changed"

	assert.Equal(t, "1st Semester", Semesters()[0].Value)
}

func TestLearningStylesIncludeCommonTags(t *testing.T) {
	values := Values(LearningStyles())
	assert.Contains(t, values, "Videos")
	assert.Contains(t, values, "Reading")
}
