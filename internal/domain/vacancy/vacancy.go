package vacancy

import "time"

type Status string

const (
	StatusActive   Status = "active"
	StatusDraft    Status = "draft"
	StatusInactive Status = "inactive"
)

type Department string

const (
	DepartmentProduction Department = "production"
	DepartmentFacilities Department = "facilities"
	DepartmentOffice     Department = "office"
	DepartmentLogistics  Department = "logistics"

	// DepartmentAll is the filter sentinel, never stored on a vacancy.
	DepartmentAll Department = "all"
)

func Departments() []Department {
	return []Department{DepartmentProduction, DepartmentFacilities, DepartmentOffice, DepartmentLogistics}
}

// Vacancy is a job posting. Responsibilities, Requirements and Benefits are
// newline-delimited bullet text, rendered as lists by the presentation layer.
type Vacancy struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Department       Department `json:"department"`
	Location         string     `json:"location"`
	Type             string     `json:"type"`
	Description      string     `json:"description"`
	Responsibilities string     `json:"responsibilities"`
	Requirements     string     `json:"requirements"`
	Benefits         string     `json:"benefits"`
	HeaderImage      string     `json:"header_image"`
	Status           Status     `json:"status"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// Visible reports whether the posting appears on the public listing.
func (v Vacancy) Visible() bool {
	return v.Status == StatusActive
}
