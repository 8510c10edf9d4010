package scheduler

import "github.com/rhyrak/go-advisor/pkg/model"

// CanTake reports whether the student may register for c now: c has not
// been passed and every prerequisite has a passing grade on record.
func CanTake(c *model.Course, student *model.Student, cfg *Configuration) bool {
	if student.HasPassed(c.ID, cfg.PassThreshold) {
		return false
	}
	for _, prerequisite := range c.Prerequisites {
		if !student.HasPassed(prerequisite, cfg.PassThreshold) {
			return false
		}
	}
	return true
}

// Eligible returns the catalog courses the student may take now, in
// catalog order.
func Eligible(courses []*model.Course, student *model.Student, cfg *Configuration) []*model.Course {
	var eligible []*model.Course
	for _, c := range courses {
		if CanTake(c, student, cfg) {
			eligible = append(eligible, c)
		}
	}
	return eligible
}

// HasPassedAll reports whether every course has a passing grade.
func HasPassedAll(courses []*model.Course, student *model.Student, cfg *Configuration) bool {
	for _, c := range courses {
		if !student.HasPassed(c.ID, cfg.PassThreshold) {
			return false
		}
	}
	return true
}

// Remaining lists the courses without a passing grade.
func Remaining(courses []*model.Course, student *model.Student, cfg *Configuration) []*model.Course {
	var remaining []*model.Course
	for _, c := range courses {
		if !student.HasPassed(c.ID, cfg.PassThreshold) {
			remaining = append(remaining, c)
		}
	}
	return remaining
}
