package scheduler

import (
	"math/rand"
	"testing"

	"github.com/rhyrak/go-advisor/pkg/model"
	"github.com/stretchr/testify/assert"
)

func TestEligible(t *testing.T) {
	cfg := NewDefaultConfiguration()
	intro := makeCourse(1, "Intro", 3)
	passedIntro := makeCourse(2, "Data Structures", 3)
	withPrerequisites(passedIntro, 1)
	failedPrereq := withPrerequisites(makeCourse(3, "Algorithms", 3), 4)
	failed := makeCourse(4, "Discrete Math", 3)
	neverAttempted := withPrerequisites(makeCourse(5, "Compilers", 3), 99)
	twoPrereqs := withPrerequisites(makeCourse(6, "Networks", 3), 1, 4)

	student := studentWith(map[int]float64{1: 14, 4: 9.5})

	got := Eligible([]*model.Course{intro, passedIntro, failedPrereq, failed, neverAttempted, twoPrereqs}, student, cfg)

	assert.Equal(t, []model.CourseID{2, 4}, CourseIDs(got))
}

func TestEligible_NoPrerequisitesEmptyStudent(t *testing.T) {
	cfg := NewDefaultConfiguration()
	courses := []*model.Course{makeCourse(1, "A", 3), makeCourse(2, "B", 4)}

	got := Eligible(courses, model.NewStudent(), cfg)

	assert.Equal(t, courses, got)
}

func TestEligible_ThresholdIsInclusive(t *testing.T) {
	cfg := NewDefaultConfiguration()
	course := withPrerequisites(makeCourse(2, "B", 3), 1)

	assert.True(t, CanTake(course, studentWith(map[int]float64{1: 10}), cfg))
	assert.False(t, CanTake(course, studentWith(map[int]float64{1: 9.999}), cfg))
}

// TestEligible_Properties checks on random catalogs that no passed course
// is returned and every returned course has all prerequisites passed.
func TestEligible_Properties(t *testing.T) {
	cfg := NewDefaultConfiguration()
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 200; trial++ {
		n := rng.Intn(12) + 1
		courses := make([]*model.Course, n)
		for i := range courses {
			courses[i] = makeCourse(i+1, "C", rng.Intn(4)+1)
			for p := 0; p < rng.Intn(3); p++ {
				withPrerequisites(courses[i], rng.Intn(n+2)+1)
			}
		}
		student := model.NewStudent()
		for i := 1; i <= n+2; i++ {
			if rng.Intn(2) == 0 {
				student.SetGrade(model.CourseID(i), float64(rng.Intn(21)))
			}
		}

		for _, c := range Eligible(courses, student, cfg) {
			assert.False(t, student.HasPassed(c.ID, cfg.PassThreshold),
				"trial %d: course %d already passed", trial, c.ID)
			for _, p := range c.Prerequisites {
				assert.True(t, student.HasPassed(p, cfg.PassThreshold),
					"trial %d: course %d prerequisite %d not passed", trial, c.ID, p)
			}
		}
	}
}

func TestHasPassedAllAndRemaining(t *testing.T) {
	cfg := NewDefaultConfiguration()
	courses := []*model.Course{makeCourse(1, "A", 3), makeCourse(2, "B", 3)}

	student := studentWith(map[int]float64{1: 12, 2: 8})
	assert.False(t, HasPassedAll(courses, student, cfg))
	assert.Equal(t, []model.CourseID{2}, CourseIDs(Remaining(courses, student, cfg)))

	student.SetGrade(2, 11)
	assert.True(t, HasPassedAll(courses, student, cfg))
	assert.Empty(t, Remaining(courses, student, cfg))
}
