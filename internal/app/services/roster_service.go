package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/yigit/facultyroster/internal/app/models"
	"github.com/yigit/facultyroster/internal/app/repositories"
	"github.com/yigit/facultyroster/internal/pkg/apperrors"
	"github.com/yigit/facultyroster/internal/pkg/runlength"
	"github.com/yigit/facultyroster/internal/pkg/validation"
)

// RosterLoader produces a complete roster or an error, never a partial one
type RosterLoader interface {
	Load(ctx context.Context) ([]*models.Instructor, error)
}

// InstructorFilter narrows ListInstructors. Zero values match everything.
type InstructorFilter struct {
	Department  string
	Level       models.DegreeLevel
	Institution string
}

// RosterStatus describes the roster currently served
type RosterStatus struct {
	Instructors int
	Departments int
	LoadedAt    time.Time
}

// RosterService defines the interface for roster operations
type RosterService interface {
	Reload(ctx context.Context) (RosterStatus, error)
	Status(ctx context.Context) (RosterStatus, error)
	ListInstructors(ctx context.Context, filter InstructorFilter) ([]*models.Instructor, error)
	GetInstructor(ctx context.Context, id uuid.UUID) (*models.Instructor, error)
	GetInstructorsByDepartment(ctx context.Context, department string) ([]*models.Instructor, error)
	DepartmentHeadcounts(ctx context.Context) ([]runlength.Run[string], error)
	DegreeKindCounts(ctx context.Context) ([]runlength.Run[string], error)
	DegreeLevelCounts(ctx context.Context) ([]runlength.Run[models.DegreeLevel], error)
	InstitutionCounts(ctx context.Context) ([]runlength.Run[string], error)
	DegreeYearRuns(ctx context.Context, id uuid.UUID) ([]runlength.Run[int], error)
	ParseDegree(ctx context.Context, description string) (models.Degree, error)
}

// rosterServiceImpl implements the RosterService interface
type rosterServiceImpl struct {
	loader         RosterLoader
	instructorRepo *repositories.InstructorRepository
	logger         zerolog.Logger
}

// NewRosterService creates a new roster service instance
func NewRosterService(loader RosterLoader, instructorRepo *repositories.InstructorRepository, logger zerolog.Logger) RosterService {
	return &rosterServiceImpl{
		loader:         loader,
		instructorRepo: instructorRepo,
		logger:         logger,
	}
}

// Reload loads the roster again and swaps it in. On failure the previous
// roster stays in place.
func (s *rosterServiceImpl) Reload(ctx context.Context) (RosterStatus, error) {
	start := time.Now()
	instructors, err := s.loader.Load(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Roster reload failed, keeping previous roster")
		return RosterStatus{}, fmt.Errorf("error loading roster: %w", err)
	}

	s.instructorRepo.Replace(instructors)
	status := s.status()
	s.logger.Info().
		Int("instructors", status.Instructors).
		Int("departments", status.Departments).
		Dur("took", time.Since(start)).
		Msg("Roster loaded")
	return status, nil
}

// Status reports what is currently loaded
func (s *rosterServiceImpl) Status(ctx context.Context) (RosterStatus, error) {
	if err := s.ensureLoaded(); err != nil {
		return RosterStatus{}, err
	}
	return s.status(), nil
}

func (s *rosterServiceImpl) status() RosterStatus {
	return RosterStatus{
		Instructors: s.instructorRepo.Count(),
		Departments: len(runlength.UniqCount(s.instructorRepo.Departments())),
		LoadedAt:    s.instructorRepo.LoadedAt(),
	}
}

func (s *rosterServiceImpl) ensureLoaded() error {
	if !s.instructorRepo.Loaded() {
		return apperrors.ErrRosterNotLoaded
	}
	return nil
}

// validateFilter validates list filters before they are applied
func (s *rosterServiceImpl) validateFilter(filter InstructorFilter) error {
	if !validation.DepartmentName(filter.Department, false) {
		return fmt.Errorf("%w: invalid department name", apperrors.ErrValidationFailed)
	}
	if filter.Level != "" && filter.Level.Rank() == 0 {
		return fmt.Errorf("%w: unknown degree level %q", apperrors.ErrValidationFailed, filter.Level)
	}
	if !validation.SearchText(filter.Institution) {
		return fmt.Errorf("%w: institution filter is too long", apperrors.ErrValidationFailed)
	}
	return nil
}

// ListInstructors returns the instructors matching filter, in roster order
func (s *rosterServiceImpl) ListInstructors(ctx context.Context, filter InstructorFilter) ([]*models.Instructor, error) {
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}

	filter.Department = strings.TrimSpace(filter.Department)
	filter.Institution = strings.TrimSpace(filter.Institution)
	if err := s.validateFilter(filter); err != nil {
		return nil, err
	}

	institution := strings.ToLower(filter.Institution)
	result := []*models.Instructor{}
	for _, i := range s.instructorRepo.GetAll() {
		if filter.Department != "" && !strings.EqualFold(i.Department(), filter.Department) {
			continue
		}
		if !matchesDegrees(i, filter.Level, institution) {
			continue
		}
		result = append(result, i)
	}
	return result, nil
}

// matchesDegrees reports whether one degree satisfies both the level and the
// institution filter; institution is already lower-cased.
func matchesDegrees(i *models.Instructor, level models.DegreeLevel, institution string) bool {
	if level == "" && institution == "" {
		return true
	}
	for _, d := range i.Degrees() {
		if level != "" && d.Level() != level {
			continue
		}
		if institution != "" && !strings.Contains(strings.ToLower(d.Institution()), institution) {
			continue
		}
		return true
	}
	return false
}

// GetInstructor retrieves an instructor by ID
func (s *rosterServiceImpl) GetInstructor(ctx context.Context, id uuid.UUID) (*models.Instructor, error) {
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}
	if id == uuid.Nil {
		return nil, fmt.Errorf("%w: instructor ID is required", apperrors.ErrValidationFailed)
	}

	instructor, err := s.instructorRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("error getting instructor %s: %w", id, err)
	}
	return instructor, nil
}

// GetInstructorsByDepartment retrieves all instructors in a department
func (s *rosterServiceImpl) GetInstructorsByDepartment(ctx context.Context, department string) ([]*models.Instructor, error) {
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}

	department = strings.TrimSpace(department)
	if !validation.DepartmentName(department, true) {
		return nil, fmt.Errorf("%w: invalid department name", apperrors.ErrValidationFailed)
	}

	instructors, err := s.instructorRepo.GetByDepartment(department)
	if err != nil {
		return nil, fmt.Errorf("error getting instructors of %q: %w", department, err)
	}
	return instructors, nil
}

// DepartmentHeadcounts counts instructors per department, alphabetically
func (s *rosterServiceImpl) DepartmentHeadcounts(ctx context.Context) ([]runlength.Run[string], error) {
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}
	return runlength.UniqCount(s.instructorRepo.Departments()), nil
}

// DegreeKindCounts counts degrees per kind ("B.A.", "Ph.D.", ...), alphabetically
func (s *rosterServiceImpl) DegreeKindCounts(ctx context.Context) ([]runlength.Run[string], error) {
	return s.countDegrees(func(d models.Degree) string { return d.Kind() })
}

// InstitutionCounts counts degrees per granting institution, alphabetically
func (s *rosterServiceImpl) InstitutionCounts(ctx context.Context) ([]runlength.Run[string], error) {
	return s.countDegrees(func(d models.Degree) string { return d.Institution() })
}

func (s *rosterServiceImpl) countDegrees(key func(models.Degree) string) ([]runlength.Run[string], error) {
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}

	var keys []string
	for _, i := range s.instructorRepo.GetAll() {
		for _, d := range i.Degrees() {
			keys = append(keys, key(d))
		}
	}
	sort.Strings(keys)
	return runlength.UniqCount(keys), nil
}

// DegreeLevelCounts counts degrees per level, from bachelor to doctorate
func (s *rosterServiceImpl) DegreeLevelCounts(ctx context.Context) ([]runlength.Run[models.DegreeLevel], error) {
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}

	var levels []models.DegreeLevel
	for _, i := range s.instructorRepo.GetAll() {
		for _, d := range i.Degrees() {
			levels = append(levels, d.Level())
		}
	}
	sort.SliceStable(levels, func(a, b int) bool { return levels[a].Rank() < levels[b].Rank() })
	return runlength.UniqCount(levels), nil
}

// DegreeYearRuns collapses the instructor's degree years in listed order,
// without sorting, so a year repeated later forms its own run.
func (s *rosterServiceImpl) DegreeYearRuns(ctx context.Context, id uuid.UUID) ([]runlength.Run[int], error) {
	instructor, err := s.GetInstructor(ctx, id)
	if err != nil {
		return nil, err
	}

	degs := instructor.Degrees()
	years := make([]int, len(degs))
	for n, d := range degs {
		years[n] = d.Year()
	}
	return runlength.UniqCount(years), nil
}

// ParseDegree parses a single degree description without touching the roster
func (s *rosterServiceImpl) ParseDegree(ctx context.Context, description string) (models.Degree, error) {
	if strings.TrimSpace(description) == "" {
		return models.Degree{}, fmt.Errorf("%w: description cannot be empty", apperrors.ErrValidationFailed)
	}
	return models.ParseDegree(description)
}
