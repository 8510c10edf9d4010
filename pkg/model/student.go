package model

// Student records one grade per attempted course.
type Student struct {
	Grades map[CourseID]float64
}

func NewStudent() *Student {
	return &Student{Grades: make(map[CourseID]float64)}
}

// Grade returns the recorded grade and whether the course was attempted.
func (s *Student) Grade(id CourseID) (float64, bool) {
	g, ok := s.Grades[id]
	return g, ok
}

// HasPassed reports whether a grade of at least threshold is recorded.
// A course never attempted has not been passed.
func (s *Student) HasPassed(id CourseID, threshold float64) bool {
	g, ok := s.Grades[id]
	return ok && g >= threshold
}

// SetGrade records g for the course, replacing any earlier grade.
func (s *Student) SetGrade(id CourseID, g float64) {
	if s.Grades == nil {
		s.Grades = make(map[CourseID]float64)
	}
	s.Grades[id] = g
}

