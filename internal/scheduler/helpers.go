package scheduler

import (
	"fmt"
	"slices"

	"github.com/go-playground/validator/v10"
	"github.com/rhyrak/go-advisor/pkg/model"
)

type Configuration struct {
	CatalogFile           string
	GradesFile            string
	OutputDir             string  `validate:"required"`
	FilePrefix            string
	FileSuffix            string
	SummaryFile           string
	CSVDelimiter          rune    `validate:"required"`
	ScheduleDelimiter     string  `validate:"required,nefield=SessionDelimiter"`
	SessionDelimiter      string  `validate:"required"`
	PrerequisiteDelimiter string  `validate:"required"`
	PassThreshold         float64 `validate:"gte=0"`
	GrowthRate            float64 `validate:"gt=0"`
	HonorsGPA             float64 `validate:"gte=0"`
	HonorsUnitCap         int     `validate:"gt=0"`
	DefaultUnitCap        int     `validate:"gt=0"`
	InitialGPA            float64 `validate:"gte=0"`
	MaxTerms              int     `validate:"gte=0"`
}

func NewDefaultConfiguration() *Configuration {
	return &Configuration{
		OutputDir:             ".",
		FilePrefix:            "semester",
		FileSuffix:            ".sched",
		CSVDelimiter:          ',',
		ScheduleDelimiter:     "/",
		SessionDelimiter:      "-",
		PrerequisiteDelimiter: "-",
		PassThreshold:         10,
		GrowthRate:            1.05,
		HonorsGPA:             17,
		HonorsUnitCap:         24,
		DefaultUnitCap:        20,
		InitialGPA:            10, // no attempted courses yet
		MaxTerms:              0,  // derived from catalog size
	}
}

// Validate checks the configuration after every layer has been applied.
func (c *Configuration) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}
	return nil
}

// TotalUnits sums the unit counts of courses.
func TotalUnits(courses []*model.Course) int {
	total := 0
	for _, c := range courses {
		total += c.Units
	}
	return total
}

// CourseIDs lists the IDs of courses in order.
func CourseIDs(courses []*model.Course) []model.CourseID {
	ids := make([]model.CourseID, 0, len(courses))
	for _, c := range courses {
		ids = append(ids, c.ID)
	}
	return ids
}

func containsID(s []model.CourseID, e model.CourseID) bool {
	return slices.Contains(s, e)
}
