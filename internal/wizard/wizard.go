package wizard

import (
	"time"

	"enrollhub/internal/domain"
)

// Discriminant is the course-vs-internship choice controlling which
// Selection-phase fields are required.
type Discriminant string

const (
	DiscriminantCourse     Discriminant = "course"
	DiscriminantInternship Discriminant = "internship"
)

// Phase is one of the three ordered wizard phases.
type Phase int

const (
	PhasePersonal Phase = iota + 1
	PhaseSelection
	PhaseAcknowledgement
)

// PersonalData is the snapshot of the first phase.
type PersonalData struct {
	FirstName  string
	LastName   string
	Gender     string
	DOB        time.Time
	Occupation string
	Address    string
	City       string
	Pincode    string
	Country    string
	Mobile     string
	Email      string
	About      string
	ResumeName string
	Resume     []byte
}

// SelectionData is the snapshot of the second phase. Fields of the inactive
// discriminant branch keep their values but are ignored by validation and
// stripped at assembly.
type SelectionData struct {
	Type               Discriminant
	SelectedCourse     string
	Schedule           string
	Mode               string
	PlannedStart       time.Time
	PlannedEnd         time.Time
	Comments           string
	SelectedProgram    string
	SelectedInternship string
}

// AcknowledgementData is the snapshot of the final phase.
type AcknowledgementData struct {
	Declaration  bool
	CaptchaToken string
}

// CountryChecker reports membership in the country table.
type CountryChecker interface {
	IsValid(name string) bool
}

// selectionRequired is the static discriminant -> required-field mapping.
// The active validator set is always derived from this table and the current
// discriminant, so a discriminant switch can never leave stale validators
// behind.
var selectionRequired = map[Discriminant][]string{
	DiscriminantCourse:     {"selectedCourse", "schedule", "mode", "plannedStart", "plannedEnd"},
	DiscriminantInternship: {"selectedProgram", "selectedInternship"},
}

// RequiredSelectionFields returns the required Selection fields for a
// discriminant, in declaration order.
func RequiredSelectionFields(d Discriminant) []string {
	fields := selectionRequired[d]
	out := make([]string, len(fields))
	copy(out, fields)
	return out
}

var phaseFields = map[Phase][]string{
	PhasePersonal: {
		"firstName", "lastName", "gender", "dob", "occupation", "address",
		"city", "pincode", "country", "mobile", "email", "about", "resume",
	},
	PhaseSelection: {
		"type", "selectedCourse", "schedule", "mode", "plannedStart",
		"plannedEnd", "comments", "selectedProgram", "selectedInternship",
	},
	PhaseAcknowledgement: {"declaration", "recaptchaToken"},
}

// State drives the three-phase enrollment wizard. It is created when the
// wizard is entered, mutated by user input and transitions, and discarded
// (or reset) on successful submission.
type State struct {
	Phase           Phase
	Personal        PersonalData
	Selection       SelectionData
	Acknowledgement AcknowledgementData

	countries   CountryChecker
	courseNames []string
	programs    []domain.Program
	minimumAge  int
	now         func() time.Time

	touched map[Phase]map[string]bool
}

// New creates a wizard at the Personal phase. courseNames backs course
// preselection checks and programs backs the program/internship cross-check;
// either may be empty when the catalog was unreachable.
func New(countries CountryChecker, courseNames []string, programs []domain.Program, minimumAge int) *State {
	return &State{
		Phase:       PhasePersonal,
		countries:   countries,
		courseNames: courseNames,
		programs:    programs,
		minimumAge:  minimumAge,
		now:         time.Now,
		touched:     make(map[Phase]map[string]bool),
	}
}

// SetClock overrides the wizard's clock, for tests.
func (s *State) SetClock(now func() time.Time) {
	s.now = now
}

// Advance moves to the next phase when the current phase's snapshot is valid.
// When it is not, the transition is refused, every field of the current phase
// is marked touched so messages surface, and the errors are returned.
func (s *State) Advance() domain.ValidationErrors {
	errs := s.Validate(s.Phase)
	if len(errs) > 0 {
		s.MarkAllTouched(s.Phase)
		return errs
	}
	if s.Phase < PhaseAcknowledgement {
		s.Phase++
	}
	return nil
}

// Retreat moves back one phase unconditionally. Leaving the Acknowledgement
// phase invalidates the captcha token so returning forces re-verification.
func (s *State) Retreat() {
	if s.Phase > PhasePersonal {
		s.Phase--
	}
	if s.Phase < PhaseAcknowledgement {
		s.Acknowledgement.CaptchaToken = ""
	}
}

// JumpTo moves to an arbitrary phase. Backward jumps are unconditional;
// forward jumps reuse the Advance gate for every phase being skipped over.
func (s *State) JumpTo(target Phase) domain.ValidationErrors {
	if target < PhasePersonal || target > PhaseAcknowledgement {
		return domain.ValidationErrors{domain.NewFieldError("phase", "phase out of range")}
	}
	if target <= s.Phase {
		s.Phase = target
		return nil
	}
	for p := s.Phase; p < target; p++ {
		if errs := s.Validate(p); len(errs) > 0 {
			s.MarkAllTouched(p)
			return errs
		}
	}
	s.Phase = target
	return nil
}

// SetDiscriminant switches the Selection branch. The validator swap is
// implicit: validation derives the required set from selectionRequired and
// the new discriminant atomically, clearing nothing by hand.
func (s *State) SetDiscriminant(d Discriminant) {
	s.Selection.Type = d
}

// ApplyPreselection applies a course handed in from a course page, but only
// when it names a course the catalog actually lists.
func (s *State) ApplyPreselection(course string) bool {
	if course == "" {
		return false
	}
	for _, name := range s.courseNames {
		if name == course {
			s.Selection.Type = DiscriminantCourse
			s.Selection.SelectedCourse = course
			return true
		}
	}
	return false
}

// AvailableInternships returns the internships of the selected program.
func (s *State) AvailableInternships() []domain.Internship {
	for _, p := range s.programs {
		if p.Name == s.Selection.SelectedProgram {
			return p.Internships
		}
	}
	return nil
}

// Validate returns every field error of the given phase's snapshot.
func (s *State) Validate(p Phase) domain.ValidationErrors {
	switch p {
	case PhasePersonal:
		return s.validatePersonal()
	case PhaseSelection:
		return s.validateSelection()
	case PhaseAcknowledgement:
		return s.validateAcknowledgement()
	}
	return nil
}

// PhaseValid reports whether a phase's snapshot is currently valid.
func (s *State) PhaseValid(p Phase) bool {
	return len(s.Validate(p)) == 0
}

// Touch marks one field as touched.
func (s *State) Touch(p Phase, field string) {
	if s.touched[p] == nil {
		s.touched[p] = make(map[string]bool)
	}
	s.touched[p][field] = true
}

// MarkAllTouched marks every field of a phase touched.
func (s *State) MarkAllTouched(p Phase) {
	for _, field := range phaseFields[p] {
		s.Touch(p, field)
	}
}

// TouchedErrors returns the phase's errors restricted to touched fields;
// untouched fields stay silent until the user reaches them.
func (s *State) TouchedErrors(p Phase) domain.ValidationErrors {
	var out domain.ValidationErrors
	for _, err := range s.Validate(p) {
		if s.touched[p][err.Field] {
			out = append(out, err)
		}
	}
	return out
}

// Reset returns the wizard to phase 1 with empty snapshots, keeping its
// catalog and country collaborators.
func (s *State) Reset() {
	s.Phase = PhasePersonal
	s.Personal = PersonalData{}
	s.Selection = SelectionData{}
	s.Acknowledgement = AcknowledgementData{}
	s.touched = make(map[Phase]map[string]bool)
}

func (s *State) validatePersonal() domain.ValidationErrors {
	var errs domain.ValidationErrors
	p := s.Personal

	if p.FirstName == "" {
		errs = append(errs, domain.NewMissingFieldError("firstName"))
	} else if !firstNamePattern.MatchString(p.FirstName) {
		errs = append(errs, domain.NewInvalidFormatError("firstName", p.FirstName))
	}

	if p.LastName == "" {
		errs = append(errs, domain.NewMissingFieldError("lastName"))
	} else if !lastNamePattern.MatchString(p.LastName) {
		errs = append(errs, domain.NewInvalidFormatError("lastName", p.LastName))
	}

	if p.Gender == "" {
		errs = append(errs, domain.NewMissingFieldError("gender"))
	}

	if p.DOB.IsZero() {
		errs = append(errs, domain.NewMissingFieldError("dob"))
	} else if !MeetsMinimumAge(p.DOB, s.now(), s.minimumAge) {
		errs = append(errs, domain.NewFieldError("dob", "below the minimum age"))
	}

	if p.Occupation == "" {
		errs = append(errs, domain.NewMissingFieldError("occupation"))
	}

	if p.Address == "" {
		errs = append(errs, domain.NewMissingFieldError("address"))
	} else if len(p.Address) < 5 || len(p.Address) > 100 {
		errs = append(errs, domain.NewOutOfRangeError("address", len(p.Address), 5, 100))
	}

	if p.City == "" {
		errs = append(errs, domain.NewMissingFieldError("city"))
	} else if !cityPattern.MatchString(p.City) {
		errs = append(errs, domain.NewInvalidFormatError("city", p.City))
	}

	if p.Pincode == "" {
		errs = append(errs, domain.NewMissingFieldError("pincode"))
	} else if !pincodePattern.MatchString(p.Pincode) {
		errs = append(errs, domain.NewInvalidFormatError("pincode", p.Pincode))
	}

	if p.Country == "" {
		errs = append(errs, domain.NewMissingFieldError("country"))
	} else if s.countries != nil && !s.countries.IsValid(p.Country) {
		errs = append(errs, domain.NewFieldError("country", "not a recognized country"))
	}

	if p.Mobile == "" {
		errs = append(errs, domain.NewMissingFieldError("mobile"))
	} else if !mobilePattern.MatchString(p.Mobile) {
		errs = append(errs, domain.NewInvalidFormatError("mobile", p.Mobile))
	}

	if p.Email == "" {
		errs = append(errs, domain.NewMissingFieldError("email"))
	} else if !emailPattern.MatchString(p.Email) {
		errs = append(errs, domain.NewInvalidFormatError("email", p.Email))
	}

	if len(p.About) > 500 {
		errs = append(errs, domain.NewOutOfRangeError("about", len(p.About), 0, 500))
	}

	if len(p.Resume) == 0 {
		errs = append(errs, domain.NewMissingFieldError("resume"))
	}

	return errs
}

func (s *State) validateSelection() domain.ValidationErrors {
	var errs domain.ValidationErrors
	sel := s.Selection

	if sel.Type != DiscriminantCourse && sel.Type != DiscriminantInternship {
		errs = append(errs, domain.NewMissingFieldError("type"))
		return errs
	}

	required := map[string]bool{}
	for _, field := range selectionRequired[sel.Type] {
		required[field] = true
	}

	if required["selectedCourse"] && sel.SelectedCourse == "" {
		errs = append(errs, domain.NewMissingFieldError("selectedCourse"))
	}
	if required["schedule"] && sel.Schedule == "" {
		errs = append(errs, domain.NewMissingFieldError("schedule"))
	}
	if required["mode"] && sel.Mode == "" {
		errs = append(errs, domain.NewMissingFieldError("mode"))
	}
	if required["plannedStart"] {
		if sel.PlannedStart.IsZero() {
			errs = append(errs, domain.NewMissingFieldError("plannedStart"))
		} else if !StartsTodayOrLater(sel.PlannedStart, s.now()) {
			errs = append(errs, domain.NewFieldError("plannedStart", "must be today or later"))
		}
	}
	if required["plannedEnd"] {
		if sel.PlannedEnd.IsZero() {
			errs = append(errs, domain.NewMissingFieldError("plannedEnd"))
		} else if !sel.PlannedStart.IsZero() && !EndsAfterStart(sel.PlannedStart, sel.PlannedEnd) {
			errs = append(errs, domain.NewFieldError("plannedEnd", "must be after the planned start"))
		}
	}
	if required["selectedProgram"] && sel.SelectedProgram == "" {
		errs = append(errs, domain.NewMissingFieldError("selectedProgram"))
	}
	if required["selectedInternship"] {
		if sel.SelectedInternship == "" {
			errs = append(errs, domain.NewMissingFieldError("selectedInternship"))
		} else if sel.SelectedProgram != "" && len(s.programs) > 0 {
			if !s.internshipBelongsToProgram(sel.SelectedProgram, sel.SelectedInternship) {
				errs = append(errs, domain.NewFieldError("selectedInternship", "not offered by the selected program"))
			}
		}
	}

	return errs
}

func (s *State) internshipBelongsToProgram(programName, internshipTitle string) bool {
	for _, p := range s.programs {
		if p.Name == programName {
			return p.InternshipByTitle(internshipTitle) != nil
		}
	}
	// Unknown program: leave it to the selectedProgram check on the next pass.
	return true
}

func (s *State) validateAcknowledgement() domain.ValidationErrors {
	var errs domain.ValidationErrors
	if !s.Acknowledgement.Declaration {
		errs = append(errs, domain.NewFieldError("declaration", "the declaration must be accepted"))
	}
	if s.Acknowledgement.CaptchaToken == "" {
		errs = append(errs, domain.NewMissingFieldError("recaptchaToken"))
	}
	return errs
}
