package dto

import (
	"github.com/yigit/facultyroster/internal/app/models"
)

// DegreeResponse represents one degree of an instructor
type DegreeResponse struct {
	Year        int                `json:"year" example:"1994"`
	Kind        string             `json:"kind" example:"Ph.D."`
	Institution string             `json:"institution" example:"Massachusetts Institute of Technology"`
	Level       models.DegreeLevel `json:"level" example:"DOCTORATE" enums:"BACHELOR,MASTER,DOCTORATE"`
	Text        string             `json:"text" example:"1994, Ph.D., Massachusetts Institute of Technology"`
}

// InstructorResponse represents the response for an instructor
type InstructorResponse struct {
	ID            string           `json:"id" example:"5f1c0a9e-5c1e-5d6b-9a57-1d0f5e2f4d11"`
	Name          string           `json:"name" example:"Daniel P. Aalberts"`
	Department    string           `json:"department" example:"Physics"`
	Title         string           `json:"title" example:"Kennedy P. Richardson '71 Professor of Physics"`
	Degrees       []DegreeResponse `json:"degrees"`
	HighestDegree *DegreeResponse  `json:"highestDegree,omitempty"`
	Record        string           `json:"record,omitempty"`
}

// FromDegree converts a models.Degree to a DegreeResponse
func FromDegree(d models.Degree) DegreeResponse {
	return DegreeResponse{
		Year:        d.Year(),
		Kind:        d.Kind(),
		Institution: d.Institution(),
		Level:       d.Level(),
		Text:        d.String(),
	}
}

// FromInstructor converts a models.Instructor to an InstructorResponse.
// withRecord adds the canonical CSV line of the instructor.
func FromInstructor(i *models.Instructor, withRecord bool) InstructorResponse {
	if i == nil {
		return InstructorResponse{}
	}

	degs := i.Degrees()
	resp := InstructorResponse{
		ID:         i.ID().String(),
		Name:       i.Name(),
		Department: i.Department(),
		Title:      i.Title(),
		Degrees:    make([]DegreeResponse, len(degs)),
	}
	for n, d := range degs {
		resp.Degrees[n] = FromDegree(d)
	}
	if best, ok := i.HighestDegree(); ok {
		hd := FromDegree(best)
		resp.HighestDegree = &hd
	}
	if withRecord {
		resp.Record = i.String()
	}
	return resp
}

// FromInstructors converts a list of instructors
func FromInstructors(list []*models.Instructor) []InstructorResponse {
	resp := make([]InstructorResponse, len(list))
	for n, i := range list {
		resp[n] = FromInstructor(i, false)
	}
	return resp
}
