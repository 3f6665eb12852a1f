package timetable

import "fmt"

// Teacher, Class and Subject are named actors owning their own Availability
// copy. Identity is the pointer: two distinct entities with the same name are
// distinct for conflict purposes.

type Teacher struct {
	name         string
	availability *Availability
}

func NewTeacher(name string, availability *Availability) *Teacher {
	checkEntity(name, availability)
	return &Teacher{name: name, availability: availability.Clone()}
}

func (t *Teacher) Name() string {
	return t.name
}

func (t *Teacher) Availability() *Availability {
	return t.availability
}

type Class struct {
	name         string
	availability *Availability
}

func NewClass(name string, availability *Availability) *Class {
	checkEntity(name, availability)
	return &Class{name: name, availability: availability.Clone()}
}

func (c *Class) Name() string {
	return c.name
}

func (c *Class) Availability() *Availability {
	return c.availability
}

type Subject struct {
	name         string
	availability *Availability
}

func NewSubject(name string, availability *Availability) *Subject {
	checkEntity(name, availability)
	return &Subject{name: name, availability: availability.Clone()}
}

func (s *Subject) Name() string {
	return s.name
}

func (s *Subject) Availability() *Availability {
	return s.availability
}

func checkEntity(name string, availability *Availability) {
	if name == "" {
		panic("entity name must not be empty")
	}
	if availability == nil {
		panic(fmt.Sprintf("entity %v requires an availability", name))
	}
}
