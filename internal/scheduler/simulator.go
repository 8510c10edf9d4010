package scheduler

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/rhyrak/go-advisor/pkg/model"
)

// EmitFunc receives each committed term in order.
type EmitFunc func(term model.Term) error

// NextTerm computes the current GPA and the best-effort course set for the
// coming term, in name order.
func NextTerm(catalog *model.Catalog, student *model.Student, cfg *Configuration) (float64, []*model.Course) {
	candidates := SortByUnitsThenName(Eligible(catalog.Courses, student, cfg))
	gpa := GPA(catalog, student, cfg)
	return gpa, SortByName(PackTerm(candidates, gpa, cfg))
}

// TermLimit returns the number of terms a simulation may run before it is
// treated as non-terminating.
func TermLimit(catalog *model.Catalog, cfg *Configuration) int {
	if cfg.MaxTerms > 0 {
		return cfg.MaxTerms
	}
	return 4*catalog.Len() + 8
}

// Simulate registers the student term after term until every catalog
// course is passed. Each committed course gets the grade GPA*GrowthRate.
// student is updated in place. The committed terms are returned even when
// the run fails part way.
func Simulate(ctx context.Context, catalog *model.Catalog, student *model.Student, cfg *Configuration, logger *slog.Logger, emit EmitFunc) ([]model.Term, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	limit := TermLimit(catalog, cfg)
	var terms []model.Term
	for number := 1; !HasPassedAll(catalog.Courses, student, cfg); number++ {
		if err := ctx.Err(); err != nil {
			return terms, err
		}
		if number > limit {
			remaining := Remaining(catalog.Courses, student, cfg)
			return terms, fmt.Errorf("%w: %d terms, %d courses left %v", ErrTermLimit, limit, len(remaining), CourseIDs(remaining))
		}

		gpa, courses := NextTerm(catalog, student, cfg)
		if len(courses) == 0 {
			remaining := Remaining(catalog.Courses, student, cfg)
			return terms, fmt.Errorf("%w: term %d admits none of %v", ErrNoProgress, number, CourseIDs(remaining))
		}

		grade := gpa * cfg.GrowthRate
		for _, c := range courses {
			student.SetGrade(c.ID, grade)
		}

		term := model.Term{Number: number, GPA: gpa, Courses: courses}
		logger.Info("term committed",
			"term", number,
			"gpa", gpa,
			"units", TotalUnits(courses),
			"courses", CourseIDs(courses),
		)
		if emit != nil {
			if err := emit(term); err != nil {
				return terms, fmt.Errorf("emitting term %d: %w", number, err)
			}
		}
		terms = append(terms, term)
	}
	return terms, nil
}
