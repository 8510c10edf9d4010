package csvio

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/rhyrak/go-advisor/internal/scheduler"
	"github.com/rhyrak/go-advisor/pkg/model"
)

var (
	ErrEmptyFile     = errors.New("empty csv file")
	ErrMissingColumn = errors.New("missing required column")
	ErrInvalidRecord = errors.New("invalid record")
)

const (
	columnID            = "Id"
	columnName          = "Name"
	columnUnits         = "Units"
	columnDay           = "DoW"
	columnStart         = "Start"
	columnEnd           = "End"
	columnSchedule      = "Schedule"
	columnPrerequisites = "Prerequisites"
	columnGrade         = "Grade"
)

// LoadCatalog reads and parses the given csv file for course data.
func LoadCatalog(path string, cfg *scheduler.Configuration) (*model.Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}
	defer f.Close()
	return ReadCatalog(f, path, cfg)
}

// LoadGrades reads and parses the given csv file for a student's grades.
func LoadGrades(path string, cfg *scheduler.Configuration) (*model.Student, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening grades: %w", err)
	}
	defer f.Close()
	return ReadGrades(f, path, cfg)
}

// ReadCatalog parses catalog records from r. source names the input in
// error messages. Records sharing an Id add sessions to the first record's
// course.
func ReadCatalog(r io.Reader, source string, cfg *scheduler.Configuration) (*model.Catalog, error) {
	rows := []*model.CourseCSV{}
	header, err := decode(r, source, cfg.CSVDelimiter, &rows)
	if err != nil {
		return nil, err
	}
	if err := requireColumns(source, header, columnID, columnName, columnUnits, columnPrerequisites); err != nil {
		return nil, err
	}
	hasSchedule := hasColumn(header, columnSchedule)
	hasDay := hasColumn(header, columnDay) && hasColumn(header, columnStart) && hasColumn(header, columnEnd)
	if !hasSchedule && !hasDay {
		return nil, fmt.Errorf("%s: %w: %s or %s/%s/%s", source, ErrMissingColumn, columnSchedule, columnDay, columnStart, columnEnd)
	}

	var courses []*model.Course
	byID := make(map[model.CourseID]*model.Course)
	for i, row := range rows {
		line := i + 2
		if row.ID <= 0 {
			return nil, invalidRecord(source, line, "%s must be a positive integer, got %d", columnID, row.ID)
		}
		sessions, err := rowSessions(row, cfg)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", source, line, err)
		}

		id := model.CourseID(row.ID)
		if course, ok := byID[id]; ok {
			course.Sessions = append(course.Sessions, sessions...)
			continue
		}

		if row.Units <= 0 {
			return nil, invalidRecord(source, line, "%s must be a positive integer, got %d", columnUnits, row.Units)
		}
		prerequisites, err := ParsePrerequisites(row.Prerequisites, cfg.PrerequisiteDelimiter)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", source, line, err)
		}
		course := &model.Course{
			ID:            id,
			Name:          strings.TrimSpace(row.Name),
			Units:         row.Units,
			Sessions:      sessions,
			Prerequisites: prerequisites,
		}
		byID[id] = course
		courses = append(courses, course)
	}
	return model.NewCatalog(courses), nil
}

// ReadGrades parses grade records from r. A later record for the same Id
// replaces an earlier one.
func ReadGrades(r io.Reader, source string, cfg *scheduler.Configuration) (*model.Student, error) {
	rows := []*model.GradeCSV{}
	header, err := decode(r, source, cfg.CSVDelimiter, &rows)
	if err != nil {
		return nil, err
	}
	if err := requireColumns(source, header, columnID, columnGrade); err != nil {
		return nil, err
	}

	student := model.NewStudent()
	for i, row := range rows {
		if row.ID <= 0 {
			return nil, invalidRecord(source, i+2, "%s must be a positive integer, got %d", columnID, row.ID)
		}
		student.SetGrade(model.CourseID(row.ID), row.Grade)
	}
	return student, nil
}

// ParsePrerequisites splits a delimited list of course IDs. Non-positive
// IDs mean "no prerequisite" and are dropped.
func ParsePrerequisites(s string, delim string) ([]model.CourseID, error) {
	var prerequisites []model.CourseID
	for _, part := range strings.Split(s, delim) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("%w: prerequisite %q is not an integer", ErrInvalidRecord, part)
		}
		if id > 0 {
			prerequisites = append(prerequisites, model.CourseID(id))
		}
	}
	return prerequisites, nil
}

// ParseSessions parses a list such as "Mon-09:00-10:30/Wed-09:00-10:30".
func ParseSessions(s string, cfg *scheduler.Configuration) ([]model.Session, error) {
	var sessions []model.Session
	for _, part := range strings.Split(s, cfg.ScheduleDelimiter) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		fields := strings.SplitN(part, cfg.SessionDelimiter, 3)
		if len(fields) != 3 {
			return nil, fmt.Errorf("%w: session %q", ErrInvalidRecord, part)
		}
		session, err := ParseSession(fields[0], fields[1], fields[2])
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}
	return sessions, nil
}

// ParseSession builds a session from a weekday token and HH:MM bounds.
func ParseSession(day, start, end string) (model.Session, error) {
	d, err := model.ParseWeekDay(strings.TrimSpace(day))
	if err != nil {
		return model.Session{}, err
	}
	from, err := model.ParseClockTime(strings.TrimSpace(start))
	if err != nil {
		return model.Session{}, err
	}
	to, err := model.ParseClockTime(strings.TrimSpace(end))
	if err != nil {
		return model.Session{}, err
	}
	if from >= to {
		return model.Session{}, fmt.Errorf("%w: session %s %s-%s ends before it starts", ErrInvalidRecord, d, from, to)
	}
	return model.Session{Day: d, Start: from, End: to}, nil
}

// rowSessions prefers the Schedule column and falls back to DoW/Start/End.
// A row with every schedule field empty has no sessions.
func rowSessions(row *model.CourseCSV, cfg *scheduler.Configuration) ([]model.Session, error) {
	if strings.TrimSpace(row.ScheduleSTR) != "" {
		return ParseSessions(row.ScheduleSTR, cfg)
	}
	if strings.TrimSpace(row.DaySTR+row.StartSTR+row.EndSTR) == "" {
		return nil, nil
	}
	session, err := ParseSession(row.DaySTR, row.StartSTR, row.EndSTR)
	if err != nil {
		return nil, err
	}
	return []model.Session{session}, nil
}

func newReader(in io.Reader, delim rune) *csv.Reader {
	r := csv.NewReader(in)
	r.Comma = delim
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	return r
}

// decode reads the header for column checks and unmarshals every record
// into out with a reader configured for delim.
func decode(r io.Reader, source string, delim rune, out any) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", source, err)
	}
	header, err := newReader(bytes.NewReader(data), delim).Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s: %w", source, ErrEmptyFile)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", source, ErrInvalidRecord, err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(strings.TrimPrefix(header[i], "\ufeff"))
	}
	if err := gocsv.UnmarshalCSV(newReader(bytes.NewReader(data), delim), out); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", source, ErrInvalidRecord, err)
	}
	return header, nil
}

func hasColumn(header []string, key string) bool {
	for _, h := range header {
		if h == key {
			return true
		}
	}
	return false
}

func requireColumns(source string, header []string, keys ...string) error {
	var missing []string
	for _, key := range keys {
		if !hasColumn(header, key) {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%s: %w: %s", source, ErrMissingColumn, strings.Join(missing, ", "))
	}
	return nil
}

func invalidRecord(source string, line int, format string, args ...any) error {
	return fmt.Errorf("%s:%d: %w: %s", source, line, ErrInvalidRecord, fmt.Sprintf(format, args...))
}
