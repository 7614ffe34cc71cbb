package dto

// CourseSummaryResponse represents one course in a list response
type CourseSummaryResponse struct {
	ID          int      `json:"id"`
	Slug        string   `json:"slug"`
	CourseName  string   `json:"course_name"`
	Image       string   `json:"image,omitempty"`
	Category    string   `json:"category"`
	Title       string   `json:"title"`
	Description []string `json:"description,omitempty"`
	Duration    string   `json:"duration"`
	Students    int      `json:"students"`
}

// CourseResponse represents a full course in the API response
type CourseResponse struct {
	ID           int               `json:"id"`
	Slug         string            `json:"slug"`
	CourseName   string            `json:"course_name"`
	Image        string            `json:"image,omitempty"`
	Video        string            `json:"video,omitempty"`
	Category     string            `json:"category"`
	Title        string            `json:"title"`
	Description  []string          `json:"description,omitempty"`
	Duration     string            `json:"duration"`
	Students     int               `json:"students"`
	Overview     string            `json:"overview,omitempty"`
	Highlights   []string          `json:"highlights,omitempty"`
	CareerScope  []string          `json:"career_scope,omitempty"`
	CanEnroll    []string          `json:"can_enroll,omitempty"`
	ToolsCovered []string          `json:"tools_covered,omitempty"`
	Syllabus     *SyllabusResponse `json:"syllabus,omitempty"`
	FAQ          []FaqResponse     `json:"faq,omitempty"`
}

// SyllabusResponse represents a course syllabus in the API response
type SyllabusResponse struct {
	Sections int               `json:"sections"`
	Lessons  int               `json:"lessons"`
	Duration int               `json:"duration"`
	List     []SectionResponse `json:"list"`
}

// SectionResponse represents one syllabus section
type SectionResponse struct {
	ID              int      `json:"id"`
	Title           string   `json:"title"`
	DurationMinutes int      `json:"duration_minutes"`
	Lessons         []string `json:"lessons"`
}

// FaqResponse represents one FAQ entry of a course
type FaqResponse struct {
	ID       int    `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// ProgramResponse represents an internship program in the API response
type ProgramResponse struct {
	Name        string               `json:"name"`
	Level       string               `json:"level"`
	Internships []InternshipResponse `json:"internships"`
}

// InternshipResponse represents one internship offering
type InternshipResponse struct {
	Title          string             `json:"title"`
	Category       string             `json:"category"`
	Description    string             `json:"description,omitempty"`
	Duration       string             `json:"duration,omitempty"`
	StartDate      string             `json:"start_date,omitempty"`
	KeySkills      KeySkillsResponse  `json:"key_skills"`
	ProjectOutputs []string           `json:"project_outputs,omitempty"`
}

// KeySkillsResponse represents the skill lists of an internship
type KeySkillsResponse struct {
	ProgrammingLanguages []string `json:"programming_languages,omitempty"`
	Scripting            []string `json:"scripting,omitempty"`
	Frontend             []string `json:"frontend,omitempty"`
	Backend              []string `json:"backend,omitempty"`
	Databases            []string `json:"databases,omitempty"`
	TestingTools         []string `json:"testing_tools,omitempty"`
}

// CountryResponse represents one country record in the API response
type CountryResponse struct {
	Name     string `json:"name"`
	ISO2     string `json:"iso2"`
	DialCode string `json:"dial_code"`
	Prefix   string `json:"prefix"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error string `json:"error"`
}
