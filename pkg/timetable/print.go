package timetable

import (
	"fmt"
	"io"
)

// PrintConfig dumps the instance: name, calendar shape, entity names and the
// lesson count. Diagnostic only.
func PrintConfig(w io.Writer, config TimetableConfig) {
	fmt.Fprintln(w, "Timetable Configuration:")
	fmt.Fprintf(w, "Name: %v\n", config.Name)
	fmt.Fprintf(w, "Days: %v\n", config.Days)
	fmt.Fprintf(w, "Periods per Day: %v\n", config.PeriodsPerDay)

	fmt.Fprintln(w, "\nSubjects:")
	for _, subject := range config.Subjects {
		fmt.Fprintf(w, "  - %v\n", subject.Name())
	}

	fmt.Fprintln(w, "\nTeachers:")
	for _, teacher := range config.Teachers {
		fmt.Fprintf(w, "  - %v\n", teacher.Name())
	}

	fmt.Fprintln(w, "\nClasses:")
	for _, class := range config.Classes {
		fmt.Fprintf(w, "  - %v\n", class.Name())
	}

	fmt.Fprintln(w, "\nLessons:")
	for index := range config.Lessons {
		fmt.Fprintf(w, "  Lesson %v\n", index+1)
	}
}

// PrintSchedule reports, per lesson, the resolved names and the chosen slot.
func PrintSchedule(w io.Writer, config TimetableConfig, schedule Schedule) {
	for i, lesson := range config.Lessons {
		fmt.Fprintf(w, "Lesson %v (%v, %v, %v) scheduled at Day %v, Period %v\n",
			i,
			lesson.Class().Name(),
			lesson.Teacher().Name(),
			lesson.Subject().Name(),
			schedule[i].Day,
			schedule[i].Period,
		)
	}
}
