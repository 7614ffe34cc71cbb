package dto

// StartEnrollmentRequest opens a new wizard session. SelectedCourse carries
// a preselection handed over from a course page; it is applied only when the
// catalog lists that course.
type StartEnrollmentRequest struct {
	SelectedCourse string `json:"selected_course,omitempty"`
}

// UpdatePersonalRequest patches the Personal phase snapshot. Dates use the
// ISO form 2006-01-02.
type UpdatePersonalRequest struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Gender     string `json:"gender"`
	DOB        string `json:"dob"`
	Occupation string `json:"occupation"`
	Address    string `json:"address"`
	City       string `json:"city"`
	Pincode    string `json:"pincode"`
	Country    string `json:"country"`
	Mobile     string `json:"mobile"`
	Email      string `json:"email"`
	About      string `json:"about"`
}

// UpdateSelectionRequest patches the Selection phase snapshot.
type UpdateSelectionRequest struct {
	Type               string `json:"type"`
	SelectedCourse     string `json:"selected_course"`
	Schedule           string `json:"schedule"`
	Mode               string `json:"mode"`
	PlannedStart       string `json:"planned_start"`
	PlannedEnd         string `json:"planned_end"`
	Comments           string `json:"comments"`
	SelectedProgram    string `json:"selected_program"`
	SelectedInternship string `json:"selected_internship"`
}

// UpdateAcknowledgementRequest patches the Acknowledgement phase snapshot.
type UpdateAcknowledgementRequest struct {
	Declaration    bool   `json:"declaration"`
	RecaptchaToken string `json:"recaptcha_token"`
}

// JumpRequest targets an arbitrary wizard phase.
type JumpRequest struct {
	Phase int `json:"phase"`
}

// FieldErrorResponse surfaces one invalid, touched field.
type FieldErrorResponse struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// EnrollmentResponse is the wizard state view returned by every session
// operation.
type EnrollmentResponse struct {
	ID                   string               `json:"id"`
	Phase                int                  `json:"phase"`
	Discriminant         string               `json:"discriminant,omitempty"`
	PersonalValid        bool                 `json:"personal_valid"`
	SelectionValid       bool                 `json:"selection_valid"`
	AcknowledgementValid bool                 `json:"acknowledgement_valid"`
	FieldErrors          []FieldErrorResponse `json:"field_errors,omitempty"`
	SelectedCourse       string               `json:"selected_course,omitempty"`
	SelectedProgram      string               `json:"selected_program,omitempty"`
	AvailableInternships []string             `json:"available_internships,omitempty"`
	ResumeUploaded       bool                 `json:"resume_uploaded"`
}

// SubmitResponse reports the outcome of a submission.
type SubmitResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}
