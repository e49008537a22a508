package dto

// SchoolResponse is the public shape of a school
type SchoolResponse struct {
	SchoolID   int64  `json:"school_id" example:"1"`
	SchoolName string `json:"school_name" example:"Truman State University"`
}
