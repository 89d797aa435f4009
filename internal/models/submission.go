package models

// ContactRequest is a persisted "information request" lead from the short
// contact form. ID, ReferenceID, Status and CreatedAt are server-assigned;
// nothing in this codebase mutates a record after creation.
type ContactRequest struct {
	ID          string  `json:"id,omitempty"`
	ReferenceID string  `json:"reference_id"`
	ParentName  string  `json:"parent_name"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	ChildAge    string  `json:"child_age"`
	Message     *string `json:"message,omitempty"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"created_at"`
}

// EnrollmentInquiry is a persisted lead from the multi-step enrollment form.
type EnrollmentInquiry struct {
	ID                 string  `json:"id,omitempty"`
	ReferenceID        string  `json:"reference_id"`
	ParentName         string  `json:"parent_name"`
	Email              string  `json:"email"`
	Phone              string  `json:"phone"`
	Relationship       string  `json:"relationship"`
	ChildName          string  `json:"child_name"`
	DateOfBirth        string  `json:"date_of_birth"`
	Program            string  `json:"program"`
	SpecialNeeds       *string `json:"special_needs,omitempty"`
	PreviousSchool     *string `json:"previous_school,omitempty"`
	PreferredStartDate *string `json:"preferred_start_date,omitempty"`
	HowHeard           *string `json:"how_heard,omitempty"`
	Message            *string `json:"message,omitempty"`
	Status             string  `json:"status"`
	CreatedAt          string  `json:"created_at"`
}

// StatusNew is the initial lifecycle status of every submission. Later
// transitions (contacted, enrolled) happen in external admin tooling.
const StatusNew = "new"
