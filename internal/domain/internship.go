package domain

// Program groups the internships offered under one program name and level.
type Program struct {
	Name        string
	Level       string
	Internships []Internship
}

// Validate validates the program
func (p *Program) Validate() error {
	if p.Name == "" {
		return NewValidationFailure("name is required")
	}
	return nil
}

// InternshipByTitle returns the internship with the given title, or nil.
func (p *Program) InternshipByTitle(title string) *Internship {
	for i := range p.Internships {
		if p.Internships[i].Title == title {
			return &p.Internships[i]
		}
	}
	return nil
}

// Internship is a single internship offering within a program.
type Internship struct {
	Title          string
	Category       string
	Description    string
	Duration       string
	StartDate      string
	KeySkills      KeySkills
	ProjectOutputs []string
}

// KeySkills holds the six optional skill lists of an internship. Any of the
// lists may be nil when the document omits the block.
type KeySkills struct {
	ProgrammingLanguages []string
	Scripting            []string
	Frontend             []string
	Backend              []string
	Databases            []string
	TestingTools         []string
}
