package scheduler

import "github.com/rhyrak/go-advisor/pkg/model"

// GPA returns the unit-weighted mean grade over the attempted courses.
// Grades for courses missing from the catalog carry no units and are
// ignored. A student with no weighted grade gets cfg.InitialGPA.
func GPA(catalog *model.Catalog, student *model.Student, cfg *Configuration) float64 {
	var weighted float64
	units := 0
	// Catalog order keeps the floating point sum deterministic.
	for _, c := range catalog.Courses {
		grade, ok := student.Grade(c.ID)
		if !ok {
			continue
		}
		units += c.Units
		weighted += float64(c.Units) * grade
	}
	if units == 0 {
		return cfg.InitialGPA
	}
	return weighted / float64(units)
}
