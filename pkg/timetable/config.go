package timetable

import "fmt"

// TimetableConfig is a full problem instance: the calendar shape plus every
// entity and lesson. Lesson order is the stable identifier used for variable
// naming and failure reporting; entity order is irrelevant.
type TimetableConfig struct {
	Name          string
	Days          int
	PeriodsPerDay int
	Teachers      []*Teacher
	Classes       []*Class
	Subjects      []*Subject
	Lessons       []*Lesson
}

// Validate checks the calendar bounds, the lesson references and that every
// referenced Availability matches the config's dimensions. It is invoked at
// model-build time; a violation makes generation fail before any solving.
func (config TimetableConfig) Validate() error {
	if config.Days < 1 || config.Days > MaxDays {
		return fmt.Errorf("days out of range: %v", config.Days)
	}
	if config.PeriodsPerDay < 1 || config.PeriodsPerDay > MaxPeriodsPerDay {
		return fmt.Errorf("periods per day out of range: %v", config.PeriodsPerDay)
	}

	check := func(kind, name string, availability *Availability) error {
		if availability.Days() != config.Days || availability.PeriodsPerDay() != config.PeriodsPerDay {
			return fmt.Errorf("%v %v: availability is %vx%v, config is %vx%v",
				kind, name,
				availability.Days(), availability.PeriodsPerDay(),
				config.Days, config.PeriodsPerDay,
			)
		}
		return nil
	}

	for _, teacher := range config.Teachers {
		if err := check("teacher", teacher.Name(), teacher.Availability()); err != nil {
			return err
		}
	}
	for _, class := range config.Classes {
		if err := check("class", class.Name(), class.Availability()); err != nil {
			return err
		}
	}
	for _, subject := range config.Subjects {
		if err := check("subject", subject.Name(), subject.Availability()); err != nil {
			return err
		}
	}

	for i, lesson := range config.Lessons {
		if lesson == nil {
			return fmt.Errorf("lesson %v is nil", i)
		}
		if err := check("teacher", lesson.Teacher().Name(), lesson.Teacher().Availability()); err != nil {
			return fmt.Errorf("lesson %v: %w", i, err)
		}
		if err := check("class", lesson.Class().Name(), lesson.Class().Availability()); err != nil {
			return fmt.Errorf("lesson %v: %w", i, err)
		}
	}

	return nil
}
