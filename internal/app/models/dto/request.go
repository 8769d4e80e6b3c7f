package dto

// ListInstructorsQuery filters the instructor list
type ListInstructorsQuery struct {
	Department  string `form:"department" binding:"omitempty,max=100"`
	Level       string `form:"level" binding:"omitempty,oneof=bachelor master doctorate BACHELOR MASTER DOCTORATE"`
	Institution string `form:"institution" binding:"omitempty,max=200"`
	Page        int    `form:"page" binding:"omitempty,min=1"`
	Size        int    `form:"size" binding:"omitempty,min=1,max=100"`
}

// ParseDegreeRequest asks the server to parse a degree description
type ParseDegreeRequest struct {
	Description string `json:"description" binding:"required,max=500" validate:"required,max=500" example:"1994, Ph.D., Massachusetts Institute of Technology"`
}
