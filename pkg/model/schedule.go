package model

// Day holds the sessions placed on one weekday.
type Day struct {
	DayOfWeek WeekDay
	Slots     []*TimeSlot
}

// TimeSlot is one placed session and the course it belongs to.
type TimeSlot struct {
	Session   Session
	CourseRef *Course
}

// WeeklySchedule is the occupancy grid of a term, one Day per weekday.
type WeeklySchedule struct {
	Days  []*Day
	Units int
}

// Term is one committed registration cycle.
type Term struct {
	Number  int
	GPA     float64
	Courses []*Course
}

// TermCSVRow is one line of a simulation summary export.
type TermCSVRow struct {
	Term     int      `csv:"term"`
	CourseID CourseID `csv:"course_id"`
	Name     string   `csv:"name"`
	Units    int      `csv:"units"`
	Grade    float64  `csv:"grade"`
	GPA      float64  `csv:"gpa"`
}

// CourseIDRow is one line of a course listing.
type CourseIDRow struct {
	CourseID CourseID `csv:"Id"`
}

/* NewWeeklySchedule creates an empty schedule. */
func NewWeeklySchedule() *WeeklySchedule {
	schedule := WeeklySchedule{Days: make([]*Day, DaysInWeek)}
	for i := range schedule.Days {
		schedule.Days[i] = &Day{DayOfWeek: WeekDay(i)}
	}
	return &schedule
}

// IsAvailable reports whether s can be placed without colliding with an
// already placed session on the same day.
func (w *WeeklySchedule) IsAvailable(s Session) bool {
	if s.Day < 0 || int(s.Day) >= len(w.Days) {
		return false
	}
	for _, slot := range w.Days[s.Day].Slots {
		if slot.Session.Overlaps(s) {
			return false
		}
	}
	return true
}

// Fits reports whether every session of c is available.
func (w *WeeklySchedule) Fits(c *Course) bool {
	for _, s := range c.Sessions {
		if !w.IsAvailable(s) {
			return false
		}
	}
	return true
}

// PlaceCourse checks the schedule and places every session of c.
// Returns false and leaves the schedule untouched if any session collides.
func (w *WeeklySchedule) PlaceCourse(c *Course) bool {
	if !w.Fits(c) {
		return false
	}
	for _, s := range c.Sessions {
		day := w.Days[s.Day]
		day.Slots = append(day.Slots, &TimeSlot{Session: s, CourseRef: c})
	}
	w.Units += c.Units
	return true
}

// Collisions returns pairs of distinct courses whose sessions overlap.
// Each pair is reported once per colliding session pair.
func (w *WeeklySchedule) Collisions() [][2]*Course {
	var out [][2]*Course
	for _, day := range w.Days {
		for i, a := range day.Slots {
			for _, b := range day.Slots[i+1:] {
				if a.CourseRef != b.CourseRef && a.Session.Overlaps(b.Session) {
					out = append(out, [2]*Course{a.CourseRef, b.CourseRef})
				}
			}
		}
	}
	return out
}

// ForceCourse places c without checking availability. Used to rebuild a
// schedule from an existing term for validation.
func (w *WeeklySchedule) ForceCourse(c *Course) {
	for _, s := range c.Sessions {
		if s.Day < 0 || int(s.Day) >= len(w.Days) {
			continue
		}
		day := w.Days[s.Day]
		day.Slots = append(day.Slots, &TimeSlot{Session: s, CourseRef: c})
	}
	w.Units += c.Units
}
