package scheduler

import (
	"fmt"

	"github.com/rhyrak/go-advisor/pkg/model"
)

// ValidateTerm checks a term's course set against the unit cap for gpa and
// for session collisions.
// Returns false and a message for invalid terms.
func ValidateTerm(courses []*model.Course, gpa float64, cfg *Configuration) (bool, string) {
	var message string
	var valid bool = true
	var hasCollision bool = false
	var hasDuplicate bool = false

	limit := UnitCap(gpa, cfg)
	units := TotalUnits(courses)
	withinCap := units <= limit
	if !withinCap {
		valid = false
		message += fmt.Sprintf("- Term has %d units, cap is %d at GPA %.2f\n", units, limit, gpa)
	}

	schedule := model.NewWeeklySchedule()
	var seen []model.CourseID
	for _, c := range courses {
		if containsID(seen, c.ID) {
			valid = false
			hasDuplicate = true
			message += fmt.Sprintf("- Course %d registered more than once\n", c.ID)
			continue
		}
		seen = append(seen, c.ID)
		schedule.ForceCourse(c)
	}

	for _, pair := range schedule.Collisions() {
		valid = false
		hasCollision = true
		message += fmt.Sprintf("- Courses %d and %d meet at the same time\n", pair[0].ID, pair[1].ID)
	}

	if hasDuplicate {
		message = "[FAIL]: Duplicate course check.\n" + message
	} else {
		message = "[  OK]: Duplicate course check.\n" + message
	}
	if hasCollision {
		message = "[FAIL]: Session collision check.\n" + message
	} else {
		message = "[  OK]: Session collision check.\n" + message
	}
	if !withinCap {
		message = "[FAIL]: Unit cap check.\n" + message
	} else {
		message = "[  OK]: Unit cap check.\n" + message
	}

	return valid, message
}
