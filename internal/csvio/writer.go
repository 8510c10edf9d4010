package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"github.com/rhyrak/go-advisor/internal/scheduler"
	"github.com/rhyrak/go-advisor/pkg/model"
)

// WriteListing writes the course IDs one per line, in the given order.
func WriteListing(w io.Writer, courses []*model.Course) error {
	if len(courses) == 0 {
		return nil
	}
	rows := make([]*model.CourseIDRow, 0, len(courses))
	for _, c := range courses {
		rows = append(rows, &model.CourseIDRow{CourseID: c.ID})
	}
	return gocsv.MarshalCSVWithoutHeaders(&rows, gocsv.NewSafeCSVWriter(csv.NewWriter(w)))
}

// TermFileName returns the artifact name for a term number.
func TermFileName(cfg *scheduler.Configuration, number int) string {
	return fmt.Sprintf("%s%d%s", cfg.FilePrefix, number, cfg.FileSuffix)
}

// ExportTerm writes the term listing to its numbered file in the output
// directory, replacing any earlier file. Returns the written path.
func ExportTerm(term model.Term, cfg *scheduler.Configuration) (string, error) {
	path := filepath.Join(cfg.OutputDir, TermFileName(cfg, term.Number))
	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", path, err)
	}
	if err := WriteListing(out, term.Courses); err != nil {
		out.Close()
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	if err := out.Close(); err != nil {
		return "", fmt.Errorf("closing %s: %w", path, err)
	}
	return path, nil
}

// SummaryRows flattens terms into one row per committed course.
func SummaryRows(terms []model.Term, cfg *scheduler.Configuration) []*model.TermCSVRow {
	var rows []*model.TermCSVRow
	for _, term := range terms {
		for _, c := range term.Courses {
			rows = append(rows, &model.TermCSVRow{
				Term:     term.Number,
				CourseID: c.ID,
				Name:     c.Name,
				Units:    c.Units,
				Grade:    term.GPA * cfg.GrowthRate,
				GPA:      term.GPA,
			})
		}
	}
	return rows
}

// ExportSummary writes every committed course of a simulation to a csv file
// at path.
func ExportSummary(terms []model.Term, path string, cfg *scheduler.Configuration) error {
	rows := SummaryRows(terms, cfg)
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer out.Close()

	if err := gocsv.MarshalFile(&rows, out); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return out.Close()
}
