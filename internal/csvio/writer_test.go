package csvio

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rhyrak/go-advisor/internal/scheduler"
	"github.com/rhyrak/go-advisor/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteListing(t *testing.T) {
	var buf bytes.Buffer
	courses := []*model.Course{{ID: 12, Name: "B"}, {ID: 3, Name: "A"}}

	require.NoError(t, WriteListing(&buf, courses))

	assert.Equal(t, "12\n3\n", buf.String())
}

func TestWriteListing_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteListing(&buf, nil))
	assert.Empty(t, buf.String())
}

func TestTermFileName(t *testing.T) {
	cfg := scheduler.NewDefaultConfiguration()
	assert.Equal(t, "semester1.sched", TermFileName(cfg, 1))
	assert.Equal(t, "semester12.sched", TermFileName(cfg, 12))

	cfg.FilePrefix = "term-"
	cfg.FileSuffix = ".txt"
	assert.Equal(t, "term-3.txt", TermFileName(cfg, 3))
}

func TestExportTerm(t *testing.T) {
	cfg := scheduler.NewDefaultConfiguration()
	cfg.OutputDir = t.TempDir()
	term := model.Term{Number: 2, Courses: []*model.Course{{ID: 4}, {ID: 1}}}

	// A stale file from an earlier run is replaced.
	stale := filepath.Join(cfg.OutputDir, "semester2.sched")
	require.NoError(t, os.WriteFile(stale, []byte("99\n98\n97\n"), 0o644))

	path, err := ExportTerm(term, cfg)
	require.NoError(t, err)
	assert.Equal(t, stale, path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "4\n1\n", string(content))
}

func TestExportTerm_MissingDir(t *testing.T) {
	cfg := scheduler.NewDefaultConfiguration()
	cfg.OutputDir = filepath.Join(t.TempDir(), "missing")

	_, err := ExportTerm(model.Term{Number: 1}, cfg)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestExportSummary(t *testing.T) {
	cfg := scheduler.NewDefaultConfiguration()
	terms := []model.Term{
		{Number: 1, GPA: 10, Courses: []*model.Course{{ID: 1, Name: "Calculus I", Units: 3}}},
		{Number: 2, GPA: 12, Courses: []*model.Course{{ID: 2, Name: "Calculus II", Units: 3}, {ID: 5, Name: "Physics", Units: 4}}},
	}
	path := filepath.Join(t.TempDir(), "summary.csv")

	require.NoError(t, ExportSummary(terms, path, cfg))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "term,course_id,name,units,grade,gpa", lines[0])
	assert.Equal(t, "1,1,Calculus I,3,10.5,10", lines[1])
	assert.True(t, strings.HasPrefix(lines[3], "2,5,Physics,4,"))
}
