package timetable

import "fmt"

// Lesson is a demand unit: one teacher meeting one class for one subject,
// periodsPerWeek times a week. A Lesson does not own its referenced entities;
// several lessons may share them and they must outlive every model built from
// the Lesson.
type Lesson struct {
	class          *Class
	teacher        *Teacher
	subject        *Subject
	periodsPerWeek int
}

func NewLesson(class *Class, teacher *Teacher, subject *Subject, periodsPerWeek int) *Lesson {
	if class == nil || teacher == nil || subject == nil {
		panic("lesson requires a class, a teacher and a subject")
	}
	if periodsPerWeek < 1 {
		panic(fmt.Sprintf("periods per week out of range: %v", periodsPerWeek))
	}

	return &Lesson{
		class:          class,
		teacher:        teacher,
		subject:        subject,
		periodsPerWeek: periodsPerWeek,
	}
}

func (l *Lesson) Class() *Class {
	return l.class
}

func (l *Lesson) Teacher() *Teacher {
	return l.teacher
}

func (l *Lesson) Subject() *Subject {
	return l.subject
}

// PeriodsPerWeek is the weekly demand. The generator currently decides a
// single slot per lesson; the count is carried as instance data.
func (l *Lesson) PeriodsPerWeek() int {
	return l.periodsPerWeek
}

// conflictsWith reports whether two lessons may never share a slot: they
// reference the same teacher or the same class.
func (l *Lesson) conflictsWith(other *Lesson) bool {
	return l.teacher == other.teacher || l.class == other.class
}
