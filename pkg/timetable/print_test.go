package timetable

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintConfig(t *testing.T) {
	// Arrange
	availability := NewFullAvailability(5, 6)
	teacher := NewTeacher("Alice", availability)
	class := NewClass("Class 1", availability)
	subject := NewSubject("Math", availability)

	config := TimetableConfig{
		Name:          "School",
		Days:          5,
		PeriodsPerDay: 6,
		Teachers:      []*Teacher{teacher},
		Classes:       []*Class{class},
		Subjects:      []*Subject{subject},
		Lessons:       []*Lesson{NewLesson(class, teacher, subject, 1)},
	}

	// Act
	var buffer bytes.Buffer
	PrintConfig(&buffer, config)

	// Assert
	output := buffer.String()
	assert.Contains(t, output, "Name: School")
	assert.Contains(t, output, "Days: 5")
	assert.Contains(t, output, "Periods per Day: 6")
	assert.Contains(t, output, "  - Alice")
	assert.Contains(t, output, "  - Class 1")
	assert.Contains(t, output, "  - Math")
	assert.Contains(t, output, "  Lesson 1")
}

func TestPrintSchedule(t *testing.T) {
	// Arrange
	availability := NewFullAvailability(2, 2)
	teacher := NewTeacher("Alice", availability)
	class := NewClass("Class 1", availability)
	subject := NewSubject("Math", availability)

	config := TimetableConfig{
		Days:          2,
		PeriodsPerDay: 2,
		Lessons:       []*Lesson{NewLesson(class, teacher, subject, 1)},
	}
	schedule := Schedule{{Day: 1, Period: 0}}

	// Act
	var buffer bytes.Buffer
	PrintSchedule(&buffer, config, schedule)

	// Assert
	assert.Equal(t, "Lesson 0 (Class 1, Alice, Math) scheduled at Day 1, Period 0\n", buffer.String())
}
