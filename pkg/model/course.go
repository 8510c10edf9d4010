package model

import "fmt"

type CourseID int

// Session is one weekly meeting occupying [Start, End) on Day.
type Session struct {
	Day   WeekDay
	Start ClockTime
	End   ClockTime
}

// Overlaps reports whether two sessions share a weekday and their
// half-open intervals intersect. Touching endpoints do not overlap.
func (s Session) Overlaps(o Session) bool {
	return s.Day == o.Day && s.Start < o.End && o.Start < s.End
}

func (s Session) String() string {
	return fmt.Sprintf("%s %s-%s", s.Day, s.Start, s.End)
}

type Course struct {
	ID            CourseID
	Name          string
	Units         int
	Sessions      []Session
	Prerequisites []CourseID
}

// Overlaps reports whether any session of c collides with any session of o.
func (c *Course) Overlaps(o *Course) bool {
	for _, s := range c.Sessions {
		for _, other := range o.Sessions {
			if s.Overlaps(other) {
				return true
			}
		}
	}
	return false
}

// CourseCSV is one catalog record. Several records may share an Id, each
// describing one more weekly session of the same course.
type CourseCSV struct {
	ID            int    `csv:"Id"`
	Name          string `csv:"Name"`
	Units         int    `csv:"Units"`
	DaySTR        string `csv:"DoW"`
	StartSTR      string `csv:"Start"`
	EndSTR        string `csv:"End"`
	ScheduleSTR   string `csv:"Schedule"`
	Prerequisites string `csv:"Prerequisites"`
}

// GradeCSV is one grade record.
type GradeCSV struct {
	ID    int     `csv:"Id"`
	Grade float64 `csv:"Grade"`
}

// Catalog holds courses in load order with an ID index.
type Catalog struct {
	Courses []*Course
	byID    map[CourseID]*Course
}

// NewCatalog indexes courses by ID. Later duplicates are ignored.
func NewCatalog(courses []*Course) *Catalog {
	c := &Catalog{byID: make(map[CourseID]*Course, len(courses))}
	for _, course := range courses {
		if _, ok := c.byID[course.ID]; ok {
			continue
		}
		c.byID[course.ID] = course
		c.Courses = append(c.Courses, course)
	}
	return c
}

// Find returns the course with the given ID, or nil.
func (c *Catalog) Find(id CourseID) *Course {
	return c.byID[id]
}

func (c *Catalog) Len() int {
	return len(c.Courses)
}
