package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rhyrak/go-advisor/internal/csvio"
	"github.com/rhyrak/go-advisor/internal/scheduler"
	"github.com/rhyrak/go-advisor/pkg/model"
)

type server struct {
	cfg    *scheduler.Configuration
	logger *slog.Logger
}

type courseJSON struct {
	ID    model.CourseID `json:"id"`
	Name  string         `json:"name"`
	Units int            `json:"units"`
}

type termJSON struct {
	Term    int          `json:"term"`
	GPA     float64      `json:"gpa"`
	Units   int          `json:"units"`
	Courses []courseJSON `json:"courses"`
}

func toCourseJSON(courses []*model.Course) []courseJSON {
	out := make([]courseJSON, 0, len(courses))
	for _, c := range courses {
		out = append(out, courseJSON{ID: c.ID, Name: c.Name, Units: c.Units})
	}
	return out
}

func (s *server) handleEligible(ctx *gin.Context) {
	catalog, student, ok := s.loadInputs(ctx)
	if !ok {
		return
	}
	eligible := scheduler.SortByName(scheduler.Eligible(catalog.Courses, student, s.cfg))
	ctx.JSON(http.StatusOK, gin.H{
		"courses": toCourseJSON(eligible),
	})
}

func (s *server) handleNextTerm(ctx *gin.Context) {
	catalog, student, ok := s.loadInputs(ctx)
	if !ok {
		return
	}
	gpa, courses := scheduler.NextTerm(catalog, student, s.cfg)
	valid, report := scheduler.ValidateTerm(courses, gpa, s.cfg)
	ctx.JSON(http.StatusOK, gin.H{
		"gpa":     gpa,
		"unitCap": scheduler.UnitCap(gpa, s.cfg),
		"units":   scheduler.TotalUnits(courses),
		"courses": toCourseJSON(courses),
		"valid":   valid,
		"report":  report,
	})
}

func (s *server) handleSimulate(ctx *gin.Context) {
	catalog, student, ok := s.loadInputs(ctx)
	if !ok {
		return
	}
	runID := uuid.New().String()
	logger := s.logger.With("run", runID)

	terms, err := scheduler.Simulate(ctx.Request.Context(), catalog, student, s.cfg, logger, nil)
	out := make([]termJSON, 0, len(terms))
	for _, t := range terms {
		out = append(out, termJSON{
			Term:    t.Number,
			GPA:     t.GPA,
			Units:   scheduler.TotalUnits(t.Courses),
			Courses: toCourseJSON(t.Courses),
		})
	}

	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, scheduler.ErrNoProgress) || errors.Is(err, scheduler.ErrTermLimit) {
			status = http.StatusUnprocessableEntity
		}
		logger.Warn("simulation failed", "terms", len(terms), "error", err)
		ctx.JSON(status, gin.H{
			"runId": runID,
			"terms": out,
			"error": err.Error(),
		})
		return
	}

	logger.Info("simulation complete", "terms", len(terms))
	ctx.JSON(http.StatusOK, gin.H{
		"runId": runID,
		"terms": out,
	})
}

// loadInputs parses the uploaded catalog and grades files. On failure it
// writes a 400 response and returns false.
func (s *server) loadInputs(ctx *gin.Context) (*model.Catalog, *model.Student, bool) {
	catalogFile, err := ctx.FormFile("catalog")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "missing catalog file"})
		return nil, nil, false
	}
	gradesFile, err := ctx.FormFile("grades")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "missing grades file"})
		return nil, nil, false
	}

	cf, err := catalogFile.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("opening catalog: %v", err)})
		return nil, nil, false
	}
	defer cf.Close()
	catalog, err := csvio.ReadCatalog(cf, catalogFile.Filename, s.cfg)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, nil, false
	}

	gf, err := gradesFile.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("opening grades: %v", err)})
		return nil, nil, false
	}
	defer gf.Close()
	student, err := csvio.ReadGrades(gf, gradesFile.Filename, s.cfg)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, nil, false
	}
	return catalog, student, true
}
