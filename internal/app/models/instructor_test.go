package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func aalberts() *Instructor {
	return NewInstructor(
		"Daniel P. Aalberts",
		"Physics",
		"Kennedy P. Richardson '71 Professor of Physics",
		[]Degree{
			MustParseDegree("1989, B.S., Massachusetts Institute of Technology"),
			MustParseDegree("1994, Ph.D., Massachusetts Institute of Technology"),
		},
	)
}

func TestNewInstructor(t *testing.T) {
	i := aalberts()

	assert.Equal(t, "Daniel P. Aalberts", i.Name())
	assert.Equal(t, "Physics", i.Department())
	assert.Equal(t, "Kennedy P. Richardson '71 Professor of Physics", i.Title())
	require.Len(t, i.Degrees(), 2)
	assert.True(t, i.Degrees()[0].IsBachelor())
	assert.True(t, i.Degrees()[1].IsDoctorate())
}

func TestNewInstructorTrims(t *testing.T) {
	i := NewInstructor("  Ada Lovelace ", "\tMathematics\n", " Lecturer ", nil)

	assert.Equal(t, "Ada Lovelace", i.Name())
	assert.Equal(t, "Mathematics", i.Department())
	assert.Equal(t, "Lecturer", i.Title())
	assert.NotNil(t, i.Degrees())
	assert.Empty(t, i.Degrees())
}

func TestInstructorCopiesInputDegrees(t *testing.T) {
	degs := []Degree{MustParseDegree("1989, B.S., MIT")}
	i := NewInstructor("A", "B", "C", degs)

	degs[0] = MustParseDegree("2000, Ph.D., Elsewhere")
	assert.Equal(t, "B.S.", i.Degrees()[0].Kind())
}

func TestInstructorDegreesReturnsCopy(t *testing.T) {
	i := aalberts()

	degs := i.Degrees()
	degs[0] = MustParseDegree("2000, M.A., Elsewhere")
	_ = append(degs[:1], MustParseDegree("2001, M.S., Elsewhere"))

	again := i.Degrees()
	assert.Equal(t, "B.S.", again[0].Kind())
	assert.Equal(t, "Ph.D.", again[1].Kind())
}

func TestInstructorKeepsDuplicateDegrees(t *testing.T) {
	d := MustParseDegree("1994, Ph.D., MIT")
	i := NewInstructor("A", "B", "C", []Degree{d, d})
	assert.Len(t, i.Degrees(), 2)
}

func TestInstructorEqual(t *testing.T) {
	a := aalberts()
	sameIdentity := NewInstructor("Daniel P. Aalberts", " Physics ", "Visiting Professor", nil)
	otherDept := NewInstructor("Daniel P. Aalberts", "Mathematics", a.Title(), a.Degrees())
	otherName := NewInstructor("Dan Aalberts", "Physics", a.Title(), a.Degrees())

	assert.True(t, a.Equal(sameIdentity))
	assert.True(t, sameIdentity.Equal(a))
	assert.False(t, a.Equal(otherDept))
	assert.False(t, a.Equal(otherName))

	var nilInstructor *Instructor
	assert.False(t, a.Equal(nil))
	assert.False(t, nilInstructor.Equal(a))
	assert.True(t, nilInstructor.Equal(nil))
}

func TestInstructorID(t *testing.T) {
	a := aalberts()
	same := NewInstructor("Daniel P. Aalberts", "Physics", "Emeritus", nil)
	other := NewInstructor("Daniel P. Aalberts", "Chemistry", "Emeritus", nil)

	assert.Equal(t, a.ID(), same.ID())
	assert.NotEqual(t, a.ID(), other.ID())
	assert.Equal(t, 5, int(a.ID().Version()))
}

func TestInstructorString(t *testing.T) {
	want := `"Daniel P. Aalberts","Physics","Kennedy P. Richardson '71 Professor of Physics",` +
		`"1989, B.S., Massachusetts Institute of Technology","1994, Ph.D., Massachusetts Institute of Technology"`
	assert.Equal(t, want, aalberts().String())

	assert.Equal(t, `"Ada Lovelace","Mathematics","Lecturer"`, NewInstructor("Ada Lovelace", "Mathematics", "Lecturer", nil).String())
}

func TestInstructorGoString(t *testing.T) {
	want := `models.NewInstructor("Daniel P. Aalberts", "Physics", "Kennedy P. Richardson '71 Professor of Physics", []models.Degree{` +
		`models.MustParseDegree("1989, B.S., Massachusetts Institute of Technology"), ` +
		`models.MustParseDegree("1994, Ph.D., Massachusetts Institute of Technology")})`
	assert.Equal(t, want, aalberts().GoString())

	quoted := NewInstructor(`Jane "JJ" Doe`, "Art", "Lecturer", nil)
	assert.Equal(t, `models.NewInstructor("Jane \"JJ\" Doe", "Art", "Lecturer", []models.Degree{})`, quoted.GoString())
}

func TestInstructorHighestDegree(t *testing.T) {
	_, ok := NewInstructor("A", "B", "C", nil).HighestDegree()
	assert.False(t, ok)

	best, ok := aalberts().HighestDegree()
	require.True(t, ok)
	assert.Equal(t, "Ph.D.", best.Kind())

	i := NewInstructor("A", "B", "C", []Degree{
		MustParseDegree("1990, M.A., First"),
		MustParseDegree("1995, M.S., Second"),
		MustParseDegree("1995, M.Phil., Third"),
		MustParseDegree("1980, B.A., Fourth"),
	})
	best, ok = i.HighestDegree()
	require.True(t, ok)
	assert.Equal(t, "Second", best.Institution())
	assert.False(t, i.HasDoctorate())
	assert.True(t, aalberts().HasDoctorate())
}
