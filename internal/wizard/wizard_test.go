package wizard

import (
	"testing"
	"time"

	"enrollhub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// staticCountries accepts a fixed set of names.
type staticCountries map[string]bool

func (c staticCountries) IsValid(name string) bool { return c[name] }

var testNow = time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC)

func testPrograms() []domain.Program {
	return []domain.Program{
		{
			Name:  "Web Development",
			Level: "Beginner",
			Internships: []domain.Internship{
				{Title: "Frontend Internship", Category: "Web"},
				{Title: "Backend Internship", Category: "Web"},
			},
		},
		{
			Name:        "Data Science",
			Level:       "Intermediate",
			Internships: []domain.Internship{{Title: "ML Internship", Category: "Data"}},
		},
	}
}

func newTestWizard() *State {
	countries := staticCountries{"India": true, "Germany": true}
	s := New(countries, []string{"Python", "Java"}, testPrograms(), 13)
	s.SetClock(func() time.Time { return testNow })
	return s
}

func fillPersonal(s *State) {
	s.Personal = PersonalData{
		FirstName:  "Asha",
		LastName:   "Rao",
		Gender:     "female",
		DOB:        time.Date(1995, time.June, 1, 0, 0, 0, 0, time.UTC),
		Occupation: "student",
		Address:    "42 MG Road, Bengaluru",
		City:       "Bengaluru",
		Pincode:    "560001",
		Country:    "India",
		Mobile:     "9876543210",
		Email:      "asha@example.com",
		ResumeName: "resume.pdf",
		Resume:     []byte("%PDF-1.4"),
	}
}

func fillCourseSelection(s *State) {
	s.Selection = SelectionData{
		Type:           DiscriminantCourse,
		SelectedCourse: "Python",
		Schedule:       "weekend",
		Mode:           "online",
		PlannedStart:   testNow.AddDate(0, 0, 1),
		PlannedEnd:     testNow.AddDate(0, 1, 0),
	}
}

func fillInternshipSelection(s *State) {
	s.Selection = SelectionData{
		Type:               DiscriminantInternship,
		SelectedProgram:    "Web Development",
		SelectedInternship: "Frontend Internship",
	}
}

func TestAdvanceBlockedWhilePhaseInvalid(t *testing.T) {
	s := newTestWizard()

	errs := s.Advance()
	require.NotEmpty(t, errs)
	assert.Equal(t, PhasePersonal, s.Phase)

	// The refused transition marks every field touched so messages surface.
	touched := s.TouchedErrors(PhasePersonal)
	assert.Equal(t, errs, touched)
}

func TestAdvanceThroughAllPhases(t *testing.T) {
	s := newTestWizard()

	fillPersonal(s)
	require.Empty(t, s.Advance())
	assert.Equal(t, PhaseSelection, s.Phase)

	fillCourseSelection(s)
	require.Empty(t, s.Advance())
	assert.Equal(t, PhaseAcknowledgement, s.Phase)

	s.Acknowledgement = AcknowledgementData{Declaration: true, CaptchaToken: "tok"}
	require.Empty(t, s.Advance())
	// The final phase is a ceiling, not a wrap-around.
	assert.Equal(t, PhaseAcknowledgement, s.Phase)
}

func TestTouchedErrorsStaySilentUntilTouched(t *testing.T) {
	s := newTestWizard()

	require.NotEmpty(t, s.Validate(PhasePersonal))
	assert.Empty(t, s.TouchedErrors(PhasePersonal))

	s.Touch(PhasePersonal, "email")
	errs := s.TouchedErrors(PhasePersonal)
	require.Len(t, errs, 1)
	assert.Equal(t, "email", errs[0].Field)
}

func TestRetreatClearsCaptcha(t *testing.T) {
	s := newTestWizard()
	fillPersonal(s)
	fillCourseSelection(s)
	s.Phase = PhaseAcknowledgement
	s.Acknowledgement.CaptchaToken = "tok"

	s.Retreat()
	assert.Equal(t, PhaseSelection, s.Phase)
	assert.Empty(t, s.Acknowledgement.CaptchaToken)
}

func TestRetreatStopsAtFirstPhase(t *testing.T) {
	s := newTestWizard()
	s.Retreat()
	assert.Equal(t, PhasePersonal, s.Phase)
}

func TestJumpTo(t *testing.T) {
	s := newTestWizard()

	t.Run("out of range", func(t *testing.T) {
		errs := s.JumpTo(Phase(7))
		require.Len(t, errs, 1)
		assert.Equal(t, "phase", errs[0].Field)
	})

	t.Run("forward blocked by invalid phase", func(t *testing.T) {
		errs := s.JumpTo(PhaseAcknowledgement)
		require.NotEmpty(t, errs)
		assert.Equal(t, PhasePersonal, s.Phase)
	})

	t.Run("forward over valid phases", func(t *testing.T) {
		fillPersonal(s)
		fillCourseSelection(s)
		require.Empty(t, s.JumpTo(PhaseAcknowledgement))
		assert.Equal(t, PhaseAcknowledgement, s.Phase)
	})

	t.Run("backward unconditional", func(t *testing.T) {
		s.Selection = SelectionData{}
		require.Empty(t, s.JumpTo(PhasePersonal))
		assert.Equal(t, PhasePersonal, s.Phase)
	})
}

func TestDiscriminantSwitchSwapsRequiredFields(t *testing.T) {
	s := newTestWizard()
	fillCourseSelection(s)
	require.Empty(t, s.Validate(PhaseSelection))

	// Switching the branch immediately demands the other branch's fields;
	// the stale course fields are ignored, not complained about.
	s.SetDiscriminant(DiscriminantInternship)
	errs := s.Validate(PhaseSelection)
	fields := errorFields(errs)
	assert.Contains(t, fields, "selectedProgram")
	assert.Contains(t, fields, "selectedInternship")
	assert.NotContains(t, fields, "schedule")

	s.Selection.SelectedProgram = "Web Development"
	s.Selection.SelectedInternship = "Frontend Internship"
	assert.Empty(t, s.Validate(PhaseSelection))

	// Round trip back to course: the originally entered values still hold.
	s.SetDiscriminant(DiscriminantCourse)
	assert.Empty(t, s.Validate(PhaseSelection))
}

func TestSelectionWithoutDiscriminant(t *testing.T) {
	s := newTestWizard()
	errs := s.Validate(PhaseSelection)
	require.Len(t, errs, 1)
	assert.Equal(t, "type", errs[0].Field)
}

func TestSelectionDateRules(t *testing.T) {
	s := newTestWizard()
	fillCourseSelection(s)

	t.Run("start in the past", func(t *testing.T) {
		s.Selection.PlannedStart = testNow.AddDate(0, 0, -1)
		assert.Contains(t, errorFields(s.Validate(PhaseSelection)), "plannedStart")
	})

	t.Run("start today is allowed", func(t *testing.T) {
		s.Selection.PlannedStart = time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
		assert.NotContains(t, errorFields(s.Validate(PhaseSelection)), "plannedStart")
	})

	t.Run("end equal to start", func(t *testing.T) {
		s.Selection.PlannedStart = testNow.AddDate(0, 0, 2)
		s.Selection.PlannedEnd = s.Selection.PlannedStart
		assert.Contains(t, errorFields(s.Validate(PhaseSelection)), "plannedEnd")
	})

	t.Run("end one day after start", func(t *testing.T) {
		s.Selection.PlannedEnd = s.Selection.PlannedStart.AddDate(0, 0, 1)
		assert.Empty(t, s.Validate(PhaseSelection))
	})
}

func TestInternshipMustBelongToProgram(t *testing.T) {
	s := newTestWizard()
	fillInternshipSelection(s)
	require.Empty(t, s.Validate(PhaseSelection))

	s.Selection.SelectedInternship = "ML Internship"
	assert.Contains(t, errorFields(s.Validate(PhaseSelection)), "selectedInternship")
}

func TestPersonalFieldRules(t *testing.T) {
	s := newTestWizard()
	fillPersonal(s)
	require.Empty(t, s.Validate(PhasePersonal))

	t.Run("below minimum age", func(t *testing.T) {
		s.Personal.DOB = time.Date(2013, time.March, 16, 0, 0, 0, 0, time.UTC)
		assert.Contains(t, errorFields(s.Validate(PhasePersonal)), "dob")
		s.Personal.DOB = time.Date(2013, time.March, 15, 0, 0, 0, 0, time.UTC)
		assert.NotContains(t, errorFields(s.Validate(PhasePersonal)), "dob")
	})

	t.Run("unknown country", func(t *testing.T) {
		s.Personal.Country = "Atlantis"
		assert.Contains(t, errorFields(s.Validate(PhasePersonal)), "country")
		s.Personal.Country = "India"
	})

	t.Run("missing resume", func(t *testing.T) {
		s.Personal.Resume = nil
		assert.Contains(t, errorFields(s.Validate(PhasePersonal)), "resume")
		s.Personal.Resume = []byte("%PDF-1.4")
	})
}

func TestApplyPreselection(t *testing.T) {
	s := newTestWizard()

	assert.False(t, s.ApplyPreselection(""))
	assert.False(t, s.ApplyPreselection("Rust"))
	assert.Empty(t, s.Selection.SelectedCourse)

	require.True(t, s.ApplyPreselection("Python"))
	assert.Equal(t, DiscriminantCourse, s.Selection.Type)
	assert.Equal(t, "Python", s.Selection.SelectedCourse)
}

func TestAvailableInternships(t *testing.T) {
	s := newTestWizard()
	assert.Empty(t, s.AvailableInternships())

	s.Selection.SelectedProgram = "Web Development"
	internships := s.AvailableInternships()
	require.Len(t, internships, 2)
	assert.Equal(t, "Frontend Internship", internships[0].Title)
}

func TestReset(t *testing.T) {
	s := newTestWizard()
	fillPersonal(s)
	fillCourseSelection(s)
	s.Phase = PhaseAcknowledgement
	s.MarkAllTouched(PhasePersonal)

	s.Reset()
	assert.Equal(t, PhasePersonal, s.Phase)
	assert.Equal(t, PersonalData{}, s.Personal)
	assert.Equal(t, SelectionData{}, s.Selection)
	assert.Empty(t, s.TouchedErrors(PhasePersonal))

	// Collaborators survive the reset.
	assert.True(t, s.ApplyPreselection("Java"))
}

func errorFields(errs domain.ValidationErrors) []string {
	fields := make([]string, len(errs))
	for i, e := range errs {
		fields[i] = e.Field
	}
	return fields
}
