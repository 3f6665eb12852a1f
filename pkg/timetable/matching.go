package timetable

import (
	"github.com/onsi/gomega/matchers/support/goraph/bipartitegraph"
	"github.com/samber/lo"
)

// matchingFeasible rules out instances where the lessons of a single teacher
// or class cannot all receive distinct slots from their allowed sets. The
// check is a maximum bipartite matching between an entity's lessons and the
// slots those lessons may use; a deficient matching proves unsatisfiability.
// The converse does not hold, the full model still decides.
func matchingFeasible(config TimetableConfig, allowed [][]Slot) (bool, error) {
	teacherLessons := make(map[*Teacher][]int)
	classLessons := make(map[*Class][]int)
	for i, lesson := range config.Lessons {
		teacherLessons[lesson.Teacher()] = append(teacherLessons[lesson.Teacher()], i)
		classLessons[lesson.Class()] = append(classLessons[lesson.Class()], i)
	}

	groups := make([][]int, 0, len(teacherLessons)+len(classLessons))
	for _, lessons := range teacherLessons {
		groups = append(groups, lessons)
	}
	for _, lessons := range classLessons {
		groups = append(groups, lessons)
	}

	for _, lessons := range groups {
		if len(lessons) < 2 {
			continue
		}
		coverable, err := lessonsCoverable(lessons, allowed)
		if err != nil {
			return false, err
		}
		if !coverable {
			return false, nil
		}
	}

	return true, nil
}

// lessonsCoverable checks that every listed lesson can get its own slot out
// of its allowed set.
func lessonsCoverable(lessons []int, allowed [][]Slot) (bool, error) {
	allowedSets := make(map[int]map[Slot]bool, len(lessons))
	slots := make(map[Slot]bool)
	for _, lesson := range lessons {
		members := make(map[Slot]bool, len(allowed[lesson]))
		for _, slot := range allowed[lesson] {
			members[slot] = true
			slots[slot] = true
		}
		allowedSets[lesson] = members
	}

	// Build neighbors predicate over (lesson, slot) pairs
	neighbors := func(lessonAny any, slotAny any) (bool, error) {
		return allowedSets[lessonAny.(int)][slotAny.(Slot)], nil
	}

	lessonsAny := lo.Map(lessons, func(lesson int, _ int) any { return lesson })
	slotsAny := lo.Map(lo.Keys(slots), func(slot Slot, _ int) any { return slot })

	graph, err := bipartitegraph.NewBipartiteGraph(lessonsAny, slotsAny, neighbors)
	if err != nil {
		return false, err
	}

	return len(graph.LargestMatching()) == len(lessons), nil
}
