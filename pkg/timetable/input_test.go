package timetable

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeInstance(t *testing.T, content string) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), "instance.json")
	assert.Nil(t, os.WriteFile(file, []byte(content), 0o644))
	return file
}

const validInstance = `{
	"name": "Tiny school",
	"days": 2,
	"periodsPerDay": 2,
	"teachers": [
		{"name": "Alice", "availability": [[true, true], [true, false]]},
		{"name": "Bob", "availability": [[true, true], [true, true]]}
	],
	"classes": [
		{"name": "Class 1", "availability": [[true, true], [true, true]]}
	],
	"subjects": [
		{"name": "Math", "availability": [[true, true], [true, true]]}
	],
	"lessons": [
		{"class": "Class 1", "teacher": "Alice", "subject": "Math", "periodsPerWeek": 2},
		{"class": "Class 1", "teacher": "Bob", "subject": "Math", "periodsPerWeek": 1}
	]
}`

func TestConfigFromJSON(t *testing.T) {
	// Act
	config, err := ConfigFromJSON(writeInstance(t, validInstance))

	// Assert
	assert.Nil(t, err)
	assert.Equal(t, "Tiny school", config.Name)
	assert.Equal(t, 2, config.Days)
	assert.Equal(t, 2, config.PeriodsPerDay)
	assert.Len(t, config.Teachers, 2)
	assert.Len(t, config.Lessons, 2)

	assert.Equal(t, "Alice", config.Lessons[0].Teacher().Name())
	assert.False(t, config.Lessons[0].Teacher().Availability().Get(1, 1))
	assert.Same(t, config.Lessons[0].Class(), config.Lessons[1].Class())
	assert.Equal(t, 2, config.Lessons[0].PeriodsPerWeek())

	assert.Nil(t, config.Validate())
}

func TestConfigFromJSONSolves(t *testing.T) {
	// Arrange
	config, err := ConfigFromJSON(writeInstance(t, validInstance))
	assert.Nil(t, err)
	generator := newTestGenerator()

	// Act
	schedule, err := generator.Generate(config)

	// Assert
	assert.Nil(t, err)
	assert.Len(t, schedule, 2)
	assert.True(t, generator.Verify(config, schedule))
}

func TestConfigFromJSONErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := ConfigFromJSON(filepath.Join(t.TempDir(), "missing.json"))
		assert.NotNil(t, err)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := ConfigFromJSON(writeInstance(t, "{"))
		assert.NotNil(t, err)
	})

	t.Run("invalid calendar shape", func(t *testing.T) {
		_, err := ConfigFromJSON(writeInstance(t, `{"days": 9, "periodsPerDay": 2}`))
		assert.NotNil(t, err)
	})

	t.Run("unknown reference", func(t *testing.T) {
		_, err := ConfigFromJSON(writeInstance(t, `{
			"days": 1, "periodsPerDay": 1,
			"classes": [{"name": "Class 1", "availability": [[true]]}],
			"subjects": [{"name": "Math", "availability": [[true]]}],
			"lessons": [{"class": "Class 1", "teacher": "Ghost", "subject": "Math", "periodsPerWeek": 1}]
		}`))
		assert.NotNil(t, err)
		assert.Contains(t, err.Error(), "Ghost")
	})

	t.Run("duplicate entity name", func(t *testing.T) {
		_, err := ConfigFromJSON(writeInstance(t, `{
			"days": 1, "periodsPerDay": 1,
			"teachers": [
				{"name": "Alice", "availability": [[true]]},
				{"name": "Alice", "availability": [[false]]}
			]
		}`))
		assert.NotNil(t, err)
		assert.Contains(t, err.Error(), "duplicate")
	})

	t.Run("ragged availability grid", func(t *testing.T) {
		_, err := ConfigFromJSON(writeInstance(t, `{
			"days": 2, "periodsPerDay": 2,
			"teachers": [{"name": "Alice", "availability": [[true, true]]}]
		}`))
		assert.NotNil(t, err)
	})

	t.Run("non-positive periods per week", func(t *testing.T) {
		_, err := ConfigFromJSON(writeInstance(t, `{
			"days": 1, "periodsPerDay": 1,
			"teachers": [{"name": "Alice", "availability": [[true]]}],
			"classes": [{"name": "Class 1", "availability": [[true]]}],
			"subjects": [{"name": "Math", "availability": [[true]]}],
			"lessons": [{"class": "Class 1", "teacher": "Alice", "subject": "Math", "periodsPerWeek": 0}]
		}`))
		assert.NotNil(t, err)
	})
}
