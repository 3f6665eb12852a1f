package timetable

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
)

type entityInput struct {
	Name         string
	Availability [][]bool
}

type lessonInput struct {
	Class          string
	Teacher        string
	Subject        string
	PeriodsPerWeek int `mapstructure:"periodsPerWeek"`
}

type configInput struct {
	Name          string
	Days          int
	PeriodsPerDay int `mapstructure:"periodsPerDay"`
	Teachers      []entityInput
	Classes       []entityInput
	Subjects      []entityInput
	Lessons       []lessonInput
}

// ConfigFromJSON loads a timetable instance from a JSON file. Entities are
// declared once with a [day][period] availability grid and referenced from
// lessons by name; names must be unique within their entity kind.
func ConfigFromJSON(file string) (TimetableConfig, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return TimetableConfig{}, err
	}

	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return TimetableConfig{}, err
	}

	var input configInput
	if err := mapstructure.Decode(inputJson, &input); err != nil {
		return TimetableConfig{}, err
	}

	return input.toConfig()
}

func (input configInput) toConfig() (TimetableConfig, error) {
	if input.Days < 1 || input.Days > MaxDays ||
		input.PeriodsPerDay < 1 || input.PeriodsPerDay > MaxPeriodsPerDay {
		return TimetableConfig{}, fmt.Errorf("invalid calendar shape: %v days, %v periods per day", input.Days, input.PeriodsPerDay)
	}

	config := TimetableConfig{
		Name:          input.Name,
		Days:          input.Days,
		PeriodsPerDay: input.PeriodsPerDay,
	}

	teachers := make(map[string]*Teacher, len(input.Teachers))
	for _, entity := range input.Teachers {
		availability, err := input.buildAvailability(entity)
		if err != nil {
			return TimetableConfig{}, err
		}
		if _, ok := teachers[entity.Name]; ok {
			return TimetableConfig{}, fmt.Errorf("duplicate teacher: %v", entity.Name)
		}
		teacher := NewTeacher(entity.Name, availability)
		teachers[entity.Name] = teacher
		config.Teachers = append(config.Teachers, teacher)
	}

	classes := make(map[string]*Class, len(input.Classes))
	for _, entity := range input.Classes {
		availability, err := input.buildAvailability(entity)
		if err != nil {
			return TimetableConfig{}, err
		}
		if _, ok := classes[entity.Name]; ok {
			return TimetableConfig{}, fmt.Errorf("duplicate class: %v", entity.Name)
		}
		class := NewClass(entity.Name, availability)
		classes[entity.Name] = class
		config.Classes = append(config.Classes, class)
	}

	subjects := make(map[string]*Subject, len(input.Subjects))
	for _, entity := range input.Subjects {
		availability, err := input.buildAvailability(entity)
		if err != nil {
			return TimetableConfig{}, err
		}
		if _, ok := subjects[entity.Name]; ok {
			return TimetableConfig{}, fmt.Errorf("duplicate subject: %v", entity.Name)
		}
		subject := NewSubject(entity.Name, availability)
		subjects[entity.Name] = subject
		config.Subjects = append(config.Subjects, subject)
	}

	for i, lesson := range input.Lessons {
		class, ok := classes[lesson.Class]
		if !ok {
			return TimetableConfig{}, fmt.Errorf("lesson %v: unknown class %v", i, lesson.Class)
		}
		teacher, ok := teachers[lesson.Teacher]
		if !ok {
			return TimetableConfig{}, fmt.Errorf("lesson %v: unknown teacher %v", i, lesson.Teacher)
		}
		subject, ok := subjects[lesson.Subject]
		if !ok {
			return TimetableConfig{}, fmt.Errorf("lesson %v: unknown subject %v", i, lesson.Subject)
		}
		if lesson.PeriodsPerWeek < 1 {
			return TimetableConfig{}, fmt.Errorf("lesson %v: periods per week out of range: %v", i, lesson.PeriodsPerWeek)
		}

		config.Lessons = append(config.Lessons, NewLesson(class, teacher, subject, lesson.PeriodsPerWeek))
	}

	return config, nil
}

func (input configInput) buildAvailability(entity entityInput) (*Availability, error) {
	if len(entity.Availability) != input.Days {
		return nil, fmt.Errorf("%v: availability has %v days, expected %v", entity.Name, len(entity.Availability), input.Days)
	}

	availability := NewAvailability(input.Days, input.PeriodsPerDay)
	for day, row := range entity.Availability {
		if len(row) != input.PeriodsPerDay {
			return nil, fmt.Errorf("%v: day %v has %v periods, expected %v", entity.Name, day, len(row), input.PeriodsPerDay)
		}
		for period, free := range row {
			availability.Set(day, period, free)
		}
	}

	return availability, nil
}
