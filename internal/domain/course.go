package domain

// Course represents one catalog entry parsed from a course document.
// Entities are created once per catalog source and never mutated after parse.
type Course struct {
	ID           int
	Slug         string
	CourseName   string
	Image        string
	Video        string
	Category     string
	Title        string
	Description  []string
	Duration     string
	Students     int
	Overview     string
	Highlights   []string
	CareerScope  []string
	CanEnroll    []string
	ToolsCovered []string
	Syllabus     *Syllabus
	FAQ          []FaqItem
}

// Validate validates the course
func (c *Course) Validate() error {
	if c.Slug == "" {
		return NewValidationFailure("slug is required")
	}
	return nil
}

// Syllabus aggregates the section tree of a course together with its
// advertised counters. The counters come from the document, not from the
// section list; the two are not reconciled here.
type Syllabus struct {
	Sections    int
	Lessons     int
	Duration    int
	SectionList []CourseSection
}

// CourseSection is one syllabus section with its ordered lesson titles.
type CourseSection struct {
	ID              int
	Title           string
	DurationMinutes int
	Lessons         []string
}

// FaqItem is a question/answer pair attached to a course. The open/closed
// accordion flag lives in the presentation layer, not here.
type FaqItem struct {
	ID       int
	Question string
	Answer   string
}
