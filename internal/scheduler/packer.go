package scheduler

import "github.com/rhyrak/go-advisor/pkg/model"

// UnitCap returns the maximum units a student with the given GPA may
// register for in one term.
func UnitCap(gpa float64, cfg *Configuration) int {
	if gpa >= cfg.HonorsGPA {
		return cfg.HonorsUnitCap
	}
	return cfg.DefaultUnitCap
}

// PackTerm walks candidates once in the given order and admits every course
// that still fits under the unit cap without a session collision.
// Rejected candidates are skipped for good; the result depends on the order
// of candidates and is not guaranteed to maximise units.
func PackTerm(candidates []*model.Course, gpa float64, cfg *Configuration) []*model.Course {
	limit := UnitCap(gpa, cfg)
	schedule := model.NewWeeklySchedule()
	var selected []*model.Course
	for _, course := range candidates {
		if schedule.Units+course.Units > limit {
			continue
		}
		if !schedule.PlaceCourse(course) {
			continue
		}
		selected = append(selected, course)
	}
	return selected
}
