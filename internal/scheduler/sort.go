package scheduler

import (
	"cmp"
	"slices"
	"strings"

	"github.com/rhyrak/go-advisor/pkg/model"
)

// CompareByName orders courses by name, then by ascending ID.
func CompareByName(a, b *model.Course) int {
	if c := strings.Compare(a.Name, b.Name); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}

// CompareByUnitsThenName puts heavier courses first and falls back to
// CompareByName.
func CompareByUnitsThenName(a, b *model.Course) int {
	if a.Units != b.Units {
		return cmp.Compare(b.Units, a.Units)
	}
	return CompareByName(a, b)
}

// SortByName returns a sorted copy of courses.
func SortByName(courses []*model.Course) []*model.Course {
	sorted := slices.Clone(courses)
	slices.SortFunc(sorted, CompareByName)
	return sorted
}

// SortByUnitsThenName returns a sorted copy of courses.
func SortByUnitsThenName(courses []*model.Course) []*model.Course {
	sorted := slices.Clone(courses)
	slices.SortFunc(sorted, CompareByUnitsThenName)
	return sorted
}
