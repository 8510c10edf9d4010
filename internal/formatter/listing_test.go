package formatter

import (
	"strings"
	"testing"

	"github.com/rhyrak/go-advisor/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCourseTable_Plain(t *testing.T) {
	f := Formatter{Plain: true}
	courses := []*model.Course{
		{
			ID:    1,
			Name:  "Calculus I",
			Units: 3,
			Sessions: []model.Session{
				{Day: model.Mon, Start: 9 * 60, End: 10*60 + 30},
				{Day: model.Wed, Start: 9 * 60, End: 10*60 + 30},
			},
		},
		{ID: 12, Name: "Physics", Units: 4, Prerequisites: []model.CourseID{1, 2}},
	}

	out := f.CourseTable(courses)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 4)

	assert.True(t, strings.HasPrefix(lines[0], "ID  UNITS  NAME"))
	assert.Contains(t, lines[1], "──")
	assert.Contains(t, lines[2], "Mon 09:00-10:30, Wed 09:00-10:30")
	assert.True(t, strings.HasSuffix(lines[2], "-"), "no prerequisites renders a dash")
	assert.True(t, strings.HasPrefix(lines[3], "12  4      Physics"))
	assert.True(t, strings.HasSuffix(lines[3], "1 2"))
}

func TestCourseTable_Empty(t *testing.T) {
	out := Formatter{Plain: true}.CourseTable(nil)
	assert.Equal(t, 2, strings.Count(out, "\n"), "header and rule only")
}

func TestTermHeader(t *testing.T) {
	term := model.Term{Number: 3, GPA: 11.5}
	assert.Equal(t, "TERM 3  gpa 11.50  units 7", Formatter{Plain: true}.TermHeader(term, 7))
}

func TestReport_Plain(t *testing.T) {
	report := "[  OK]: Unit cap check.\n[FAIL]: Session collision check.\n"
	assert.Equal(t, report, Formatter{Plain: true}.Report(report))

	coloured := Formatter{}.Report(report)
	assert.Contains(t, coloured, "[  OK]")
	assert.Contains(t, coloured, "[FAIL]")
}

func TestCourseTable_TruncatesLongNames(t *testing.T) {
	name := strings.Repeat("Advanced ", 10)
	out := Formatter{Plain: true}.CourseTable([]*model.Course{{ID: 1, Name: name, Units: 3}})

	assert.NotContains(t, out, name)
	assert.Contains(t, out, "…")
}
