package models

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// instructorNamespace scopes the name-based instructor IDs.
var instructorNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://facultyroster/instructors"))

// Instructor describes a faculty member: name, home department, title and
// the degrees they hold, in the order they were listed.
type Instructor struct {
	name       string
	department string
	title      string
	degrees    []Degree
}

// NewInstructor trims the text fields and keeps its own copy of degrees.
func NewInstructor(name, department, title string, degrees []Degree) *Instructor {
	degs := make([]Degree, len(degrees))
	copy(degs, degrees)

	return &Instructor{
		name:       strings.TrimSpace(name),
		department: strings.TrimSpace(department),
		title:      strings.TrimSpace(title),
		degrees:    degs,
	}
}

// Name of the instructor
func (i *Instructor) Name() string {
	return i.name
}

// Department the instructor belongs to
func (i *Instructor) Department() string {
	return i.department
}

// Title of the instructor
func (i *Instructor) Title() string {
	return i.title
}

// Degrees returns a new copy of the instructor's degrees on every call.
func (i *Instructor) Degrees() []Degree {
	degs := make([]Degree, len(i.degrees))
	copy(degs, i.degrees)
	return degs
}

// ID is derived from name and department only, so instructors that are
// Equal share an ID.
func (i *Instructor) ID() uuid.UUID {
	return uuid.NewSHA1(instructorNamespace, []byte(i.name+"\x00"+i.department))
}

// Equal reports whether both instructors have the same name and department.
// Title and degrees are not compared.
func (i *Instructor) Equal(other *Instructor) bool {
	if i == nil || other == nil {
		return i == other
	}
	return i.name == other.name && i.department == other.department
}

// HasDoctorate reports whether any listed degree is a doctorate.
func (i *Instructor) HasDoctorate() bool {
	for _, d := range i.degrees {
		if d.IsDoctorate() {
			return true
		}
	}
	return false
}

// HighestDegree returns the highest-level degree. Between degrees of the same
// level the most recent wins, and on equal years the one listed first.
func (i *Instructor) HighestDegree() (Degree, bool) {
	if len(i.degrees) == 0 {
		return Degree{}, false
	}

	best := i.degrees[0]
	for _, d := range i.degrees[1:] {
		dr, br := d.Level().Rank(), best.Level().Rank()
		if dr > br || (dr == br && d.year > best.year) {
			best = d
		}
	}
	return best, true
}

// String renders the instructor as a quoted CSV line:
// "<name>","<dept>","<title>","<degree>",...
func (i *Instructor) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, `"%s","%s","%s"`, i.name, i.department, i.title)
	for _, d := range i.degrees {
		b.WriteString(`,"`)
		b.WriteString(d.String())
		b.WriteByte('"')
	}
	return b.String()
}

// GoString renders the instructor as the call that rebuilds it.
func (i *Instructor) GoString() string {
	degs := make([]string, len(i.degrees))
	for n, d := range i.degrees {
		degs[n] = d.GoString()
	}
	return fmt.Sprintf("models.NewInstructor(%q, %q, %q, []models.Degree{%s})",
		i.name, i.department, i.title, strings.Join(degs, ", "))
}
