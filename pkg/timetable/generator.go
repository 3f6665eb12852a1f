package timetable

import (
	"fmt"

	"timetableweaver/pkg/cp"

	"github.com/samber/lo"
)

// Slot is a (day, period) pair.
type Slot struct {
	Day    int
	Period int
}

// Schedule assigns one slot per lesson, indexed like the config's lesson
// sequence.
type Schedule []Slot

// UnschedulableLessonError reports a lesson whose teacher and class share no
// free slot: the instance is unsatisfiable without any search.
type UnschedulableLessonError struct {
	Lesson int
}

func (err *UnschedulableLessonError) Error() string {
	return fmt.Sprintf("no available slots for lesson %v", err.Lesson)
}

// Generator turns a timetable instance into a constraint model, delegates the
// search to a cp solver and decodes the result. A nil Schedule alongside a
// nil error means no solution exists. Every call builds a fresh model; no
// state survives between calls.
type Generator interface {
	Generate(config TimetableConfig) (Schedule, error)
	Verify(config TimetableConfig, schedule Schedule) bool
}

func NewGenerator(solver cp.Solver) Generator {
	return &cpGenerator{solver: solver}
}

type cpGenerator struct {
	solver cp.Solver
}

func (generator *cpGenerator) Generate(config TimetableConfig) (Schedule, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Nothing to place
	if len(config.Lessons) == 0 {
		return Schedule{}, nil
	}

	//** Collect the allowed-slot set of every lesson
	allowed := make([][]Slot, len(config.Lessons))
	for i, lesson := range config.Lessons {
		allowed[i] = allowedSlots(config, lesson)
		if len(allowed[i]) == 0 {
			return nil, &UnschedulableLessonError{Lesson: i}
		}
	}

	//** Rule out instances where some entity cannot fit all its lessons
	feasible, err := matchingFeasible(config, allowed)
	if err != nil {
		return nil, err
	} else if !feasible {
		return nil, nil
	}

	model := cp.NewModel()

	//** Variables: day and period for each lesson
	dayVars := make([]cp.IntVar, 0, len(config.Lessons))
	periodVars := make([]cp.IntVar, 0, len(config.Lessons))
	for i := range config.Lessons {
		dayVars = append(dayVars,
			model.NewIntVar(0, int64(config.Days-1)).WithName(fmt.Sprintf("lesson_%v_day", i)))
		periodVars = append(periodVars,
			model.NewIntVar(0, int64(config.PeriodsPerDay-1)).WithName(fmt.Sprintf("lesson_%v_period", i)))
	}

	//** Constraint 1: no teacher or class overlaps
	for i := range len(config.Lessons) {
		for j := i + 1; j < len(config.Lessons); j++ {
			if !config.Lessons[i].conflictsWith(config.Lessons[j]) {
				continue
			}

			dayEqual := model.NewBoolVar()
			model.AddEquality(dayVars[i], dayVars[j]).OnlyEnforceIf(dayEqual)
			model.AddNotEqual(dayVars[i], dayVars[j]).OnlyEnforceIf(dayEqual.Not())

			periodEqual := model.NewBoolVar()
			model.AddEquality(periodVars[i], periodVars[j]).OnlyEnforceIf(periodEqual)
			model.AddNotEqual(periodVars[i], periodVars[j]).OnlyEnforceIf(periodEqual.Not())

			// The pair must differ in day or in period (or both)
			model.AddBoolOr(dayEqual.Not(), periodEqual.Not())
		}
	}

	//** Constraint 2: availability by construction, through slot indirection
	for i := range config.Lessons {
		slotVar := model.NewIntVar(0, int64(len(allowed[i])-1)).WithName(fmt.Sprintf("lesson_%v_slot", i))

		days := lo.Map(allowed[i], func(slot Slot, _ int) int64 { return int64(slot.Day) })
		periods := lo.Map(allowed[i], func(slot Slot, _ int) int64 { return int64(slot.Period) })

		model.AddElement(slotVar, days, dayVars[i])
		model.AddElement(slotVar, periods, periodVars[i])
	}

	//** Solve for feasibility
	response, err := generator.solver.Solve(model)
	if err != nil {
		return nil, err
	}
	if response.Status != cp.Optimal && response.Status != cp.Feasible {
		return nil, nil
	}

	schedule := make(Schedule, len(config.Lessons))
	for i := range config.Lessons {
		schedule[i] = Slot{
			Day:    int(response.Value(dayVars[i])),
			Period: int(response.Value(periodVars[i])),
		}
	}

	return schedule, nil
}

// Verify independently re-checks a schedule against the instance: one
// in-bounds slot per lesson, both teacher and class free there, and no
// conflicting pair sharing a slot.
func (generator *cpGenerator) Verify(config TimetableConfig, schedule Schedule) bool {
	if len(schedule) != len(config.Lessons) {
		return false
	}

	for i, lesson := range config.Lessons {
		slot := schedule[i]
		if slot.Day < 0 || slot.Day >= config.Days ||
			slot.Period < 0 || slot.Period >= config.PeriodsPerDay {
			return false
		}
		if !lesson.Teacher().Availability().Get(slot.Day, slot.Period) ||
			!lesson.Class().Availability().Get(slot.Day, slot.Period) {
			return false
		}
	}

	for i := range len(config.Lessons) {
		for j := i + 1; j < len(config.Lessons); j++ {
			if config.Lessons[i].conflictsWith(config.Lessons[j]) && schedule[i] == schedule[j] {
				return false
			}
		}
	}

	return true
}

// allowedSlots intersects the teacher's and the class's availability masks
// day by day.
func allowedSlots(config TimetableConfig, lesson *Lesson) []Slot {
	teacherAvailability := lesson.Teacher().Availability()
	classAvailability := lesson.Class().Availability()

	slots := make([]Slot, 0, config.Days*config.PeriodsPerDay)
	for day := range config.Days {
		mask := teacherAvailability.GetDay(day) & classAvailability.GetDay(day)
		for period := range config.PeriodsPerDay {
			if mask&(1<<period) != 0 {
				slots = append(slots, Slot{Day: day, Period: period})
			}
		}
	}

	return slots
}
