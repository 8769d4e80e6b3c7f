package repositories

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/yigit/facultyroster/internal/app/models"
	"github.com/yigit/facultyroster/internal/pkg/apperrors"
	"github.com/yigit/facultyroster/internal/pkg/logger"
)

// InstructorRepository keeps the loaded roster in memory. Readers always see
// either the previous roster or the new one, never a mix.
type InstructorRepository struct {
	mu          sync.RWMutex
	instructors []*models.Instructor
	byID        map[uuid.UUID]*models.Instructor
	loadedAt    time.Time
}

// NewInstructorRepository creates an empty InstructorRepository
func NewInstructorRepository() *InstructorRepository {
	return &InstructorRepository{
		byID: make(map[uuid.UUID]*models.Instructor),
	}
}

// Replace swaps in a new roster. Instructors sharing an ID (same name and
// department) are all kept in the list; lookups by ID return the first one.
func (r *InstructorRepository) Replace(instructors []*models.Instructor) {
	list := make([]*models.Instructor, len(instructors))
	copy(list, instructors)

	byID := make(map[uuid.UUID]*models.Instructor, len(list))
	for _, i := range list {
		id := i.ID()
		if _, dup := byID[id]; dup {
			logger.Warn().Str("name", i.Name()).Str("department", i.Department()).Msg("Duplicate instructor in roster")
			continue
		}
		byID[id] = i
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.instructors = list
	r.byID = byID
	r.loadedAt = time.Now()
}

// Loaded reports whether a roster has been stored yet
func (r *InstructorRepository) Loaded() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return !r.loadedAt.IsZero()
}

// LoadedAt returns when the current roster was stored
func (r *InstructorRepository) LoadedAt() time.Time {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.loadedAt
}

// GetAll returns every instructor in roster order
func (r *InstructorRepository) GetAll() []*models.Instructor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]*models.Instructor, len(r.instructors))
	copy(list, r.instructors)
	return list
}

// GetByID retrieves an instructor by ID
func (r *InstructorRepository) GetByID(id uuid.UUID) (*models.Instructor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	instructor, ok := r.byID[id]
	if !ok {
		return nil, apperrors.ErrInstructorNotFound
	}
	return instructor, nil
}

// GetByDepartment returns the instructors of a department in roster order.
// The department name is matched case-insensitively.
func (r *InstructorRepository) GetByDepartment(department string) ([]*models.Instructor, error) {
	department = strings.TrimSpace(department)

	r.mu.RLock()
	defer r.mu.RUnlock()

	var list []*models.Instructor
	for _, i := range r.instructors {
		if strings.EqualFold(i.Department(), department) {
			list = append(list, i)
		}
	}
	if len(list) == 0 {
		return nil, apperrors.ErrDepartmentNotFound
	}
	return list, nil
}

// Departments returns one department name per instructor, sorted, so that
// equal names are adjacent.
func (r *InstructorRepository) Departments() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.instructors))
	for n, i := range r.instructors {
		names[n] = i.Department()
	}
	sort.Strings(names)
	return names
}

// Count returns the number of instructors in the roster
func (r *InstructorRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.instructors)
}
