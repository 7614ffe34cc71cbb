package wizard

import (
	"strconv"
	"time"
)

// FormType tags the assembled payload for the mail relay.
const FormType = "enrollment"

// Attachment is the resume file carried alongside the flat payload as a
// distinct binary part, never inlined into it.
type Attachment struct {
	Filename string
	Content  []byte
}

// Assemble merges the three phase snapshots into one flat payload: the union
// of all fields, dates rendered as DD/MM/YYYY (empty when absent), then the
// fields irrelevant to the active discriminant removed. Course submissions
// drop the program/internship pair; internship submissions drop the five
// course-only fields.
func Assemble(st *State) (map[string]string, *Attachment) {
	comments := st.Selection.Comments
	if RichTextEmpty(comments) {
		comments = ""
	}

	payload := map[string]string{
		"firstName":          st.Personal.FirstName,
		"lastName":           st.Personal.LastName,
		"gender":             st.Personal.Gender,
		"dob":                formatDMY(st.Personal.DOB),
		"occupation":         st.Personal.Occupation,
		"address":            st.Personal.Address,
		"city":               st.Personal.City,
		"pincode":            st.Personal.Pincode,
		"country":            st.Personal.Country,
		"mobile":             st.Personal.Mobile,
		"email":              st.Personal.Email,
		"about":              st.Personal.About,
		"type":               string(st.Selection.Type),
		"selectedCourse":     st.Selection.SelectedCourse,
		"schedule":           st.Selection.Schedule,
		"mode":               st.Selection.Mode,
		"plannedStart":       formatDMY(st.Selection.PlannedStart),
		"plannedEnd":         formatDMY(st.Selection.PlannedEnd),
		"comments":           comments,
		"selectedProgram":    st.Selection.SelectedProgram,
		"selectedInternship": st.Selection.SelectedInternship,
		"declaration":        strconv.FormatBool(st.Acknowledgement.Declaration),
		"recaptchaToken":     st.Acknowledgement.CaptchaToken,
		"formType":           FormType,
	}

	for _, key := range StrippedFields(st.Selection.Type) {
		delete(payload, key)
	}

	var attachment *Attachment
	if len(st.Personal.Resume) > 0 {
		attachment = &Attachment{
			Filename: st.Personal.ResumeName,
			Content:  st.Personal.Resume,
		}
	}
	return payload, attachment
}

// StrippedFields lists the payload fields irrelevant to a discriminant.
func StrippedFields(d Discriminant) []string {
	if d == DiscriminantCourse {
		return []string{"selectedProgram", "selectedInternship"}
	}
	return []string{"selectedCourse", "schedule", "mode", "plannedStart", "plannedEnd"}
}

// formatDMY renders a date as DD/MM/YYYY, or "" for the zero time.
func formatDMY(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02/01/2006")
}
