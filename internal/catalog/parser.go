package catalog

import (
	"encoding/xml"
	"strconv"
	"strings"

	"enrollhub/internal/domain"
)

/*
Catalog document shape (assets/data/courses.xml):

<courses>
  <course id="1" slug="python-101" courseName="Python">
    <image>...</image>
    <video>...</video>
    <courseCategory>Programming</courseCategory>
    <courseTitle>...</courseTitle>
    <desc>...</desc>
    <courseDuration>3 months</courseDuration>
    <courseStudents>120</courseStudents>
    <overview>...</overview>
    <highlight>...</highlight>
    <scope>...</scope>
    <enroll>...</enroll>
    <toolsCovered><tool>...</tool></toolsCovered>
    <faq><question id="1"><q>...</q><a>...</a></question></faq>
    <syllabus>
      <sections>4</sections>
      <lessons>20</lessons>
      <duration>16</duration>
      <section id="1" title="Basics" durationMinutes="240">
        <lesson>...</lesson>
      </section>
    </syllabus>
  </course>
</courses>
*/

type xmlCourseDoc struct {
	Courses []xmlCourse `xml:"course"`
}

type xmlCourse struct {
	ID         string   `xml:"id,attr"`
	Slug       string   `xml:"slug,attr"`
	CourseName string   `xml:"courseName,attr"`
	Image      string   `xml:"image"`
	Video      string   `xml:"video"`
	Category   string   `xml:"courseCategory"`
	Title      string   `xml:"courseTitle"`
	Descs      []string `xml:"desc"`
	Duration   string   `xml:"courseDuration"`
	Students   string   `xml:"courseStudents"`
	Overview   string   `xml:"overview"`
	Highlights []string `xml:"highlight"`
	Scope      []string `xml:"scope"`
	Enroll     []string `xml:"enroll"`

	Tools    *xmlToolsCovered `xml:"toolsCovered"`
	FAQ      *xmlFaq          `xml:"faq"`
	Syllabus *xmlSyllabus     `xml:"syllabus"`
}

type xmlToolsCovered struct {
	Tools []string `xml:"tool"`
}

type xmlFaq struct {
	Questions []xmlFaqQuestion `xml:"question"`
}

type xmlFaqQuestion struct {
	ID       string `xml:"id,attr"`
	Question string `xml:"q"`
	Answer   string `xml:"a"`
}

type xmlSyllabus struct {
	Sections string       `xml:"sections"`
	Lessons  string       `xml:"lessons"`
	Duration string       `xml:"duration"`
	List     []xmlSection `xml:"section"`
}

type xmlSection struct {
	ID              string   `xml:"id,attr"`
	Title           string   `xml:"title,attr"`
	DurationMinutes string   `xml:"durationMinutes,attr"`
	Lessons         []string `xml:"lesson"`
}

type xmlProgramDoc struct {
	Programs []xmlProgram `xml:"program"`
}

type xmlProgram struct {
	Name        string          `xml:"name"`
	Level       string          `xml:"level"`
	Internships []xmlInternship `xml:"internship"`
}

type xmlInternship struct {
	Title       string            `xml:"title"`
	Category    string            `xml:"category"`
	Description string            `xml:"description"`
	Duration    string            `xml:"duration"`
	StartDate   string            `xml:"startDate"`
	KeySkills   *xmlKeySkills     `xml:"keySkills"`
	Output      *xmlProjectOutput `xml:"projectOutput"`
}

type xmlKeySkills struct {
	Languages xmlSkillList `xml:"programmingLanguages"`
	Scripting xmlScripts   `xml:"scripting"`
	Frontend  xmlTechList  `xml:"frontend"`
	Backend   xmlTechList  `xml:"backend"`
	Databases xmlDatabases `xml:"databases"`
	Testing   xmlTestTools `xml:"testingTools"`
}

type xmlSkillList struct {
	Items []string `xml:"language"`
}

type xmlScripts struct {
	Items []string `xml:"script"`
}

type xmlTechList struct {
	Items []string `xml:"tech"`
}

type xmlDatabases struct {
	Items []string `xml:"database"`
}

type xmlTestTools struct {
	Items []string `xml:"tool"`
}

type xmlProjectOutput struct {
	Outputs []string `xml:"output"`
}

// ParseCourses decodes a catalog document into course entities. A malformed
// document yields nil, never an error: the caller treats nil as "no entities".
// Absent elements and attributes decode to zero values, non-numeric counters
// to 0, and every list item is trimmed of surrounding whitespace.
func ParseCourses(data []byte) []domain.Course {
	if len(data) == 0 {
		return nil
	}
	var doc xmlCourseDoc
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil
	}
	courses := make([]domain.Course, 0, len(doc.Courses))
	seen := make(map[string]bool, len(doc.Courses))
	for _, node := range doc.Courses {
		course := mapCourse(node)
		// A course without a slug has no identity and cannot be routed to.
		if err := course.Validate(); err != nil {
			continue
		}
		// Slugs are unique within a source; the first occurrence wins.
		if seen[course.Slug] {
			continue
		}
		seen[course.Slug] = true
		courses = append(courses, course)
	}
	return courses
}

// ParsePrograms decodes an internship document into program entities, with
// the same tolerance rules as ParseCourses.
func ParsePrograms(data []byte) []domain.Program {
	if len(data) == 0 {
		return nil
	}
	var doc xmlProgramDoc
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil
	}
	programs := make([]domain.Program, 0, len(doc.Programs))
	for _, node := range doc.Programs {
		program := domain.Program{
			Name:  strings.TrimSpace(node.Name),
			Level: strings.TrimSpace(node.Level),
		}
		if err := program.Validate(); err != nil {
			continue
		}
		for _, in := range node.Internships {
			program.Internships = append(program.Internships, mapInternship(in))
		}
		programs = append(programs, program)
	}
	return programs
}

func mapCourse(node xmlCourse) domain.Course {
	course := domain.Course{
		ID:          atoiOrZero(node.ID),
		Slug:        strings.TrimSpace(node.Slug),
		CourseName:  strings.TrimSpace(node.CourseName),
		Image:       strings.TrimSpace(node.Image),
		Video:       strings.TrimSpace(node.Video),
		Category:    strings.TrimSpace(node.Category),
		Title:       strings.TrimSpace(node.Title),
		Description: trimAll(node.Descs),
		Duration:    strings.TrimSpace(node.Duration),
		Students:    atoiOrZero(node.Students),
		Overview:    strings.TrimSpace(node.Overview),
		Highlights:  trimAll(node.Highlights),
		CareerScope: trimAll(node.Scope),
		CanEnroll:   trimAll(node.Enroll),
	}
	if node.Tools != nil {
		course.ToolsCovered = trimAll(node.Tools.Tools)
	}
	if node.FAQ != nil {
		for _, q := range node.FAQ.Questions {
			course.FAQ = append(course.FAQ, domain.FaqItem{
				ID:       atoiOrZero(q.ID),
				Question: strings.TrimSpace(q.Question),
				Answer:   strings.TrimSpace(q.Answer),
			})
		}
	}
	if node.Syllabus != nil {
		syllabus := &domain.Syllabus{
			Sections: atoiOrZero(node.Syllabus.Sections),
			Lessons:  atoiOrZero(node.Syllabus.Lessons),
			Duration: atoiOrZero(node.Syllabus.Duration),
		}
		for _, s := range node.Syllabus.List {
			syllabus.SectionList = append(syllabus.SectionList, domain.CourseSection{
				ID:              atoiOrZero(s.ID),
				Title:           strings.TrimSpace(s.Title),
				DurationMinutes: atoiOrZero(s.DurationMinutes),
				Lessons:         trimAllKeepEmpty(s.Lessons),
			})
		}
		course.Syllabus = syllabus
	}
	return course
}

func mapInternship(node xmlInternship) domain.Internship {
	internship := domain.Internship{
		Title:       strings.TrimSpace(node.Title),
		Category:    strings.TrimSpace(node.Category),
		Description: strings.TrimSpace(node.Description),
		Duration:    strings.TrimSpace(node.Duration),
		StartDate:   strings.TrimSpace(node.StartDate),
	}
	if node.KeySkills != nil {
		internship.KeySkills = domain.KeySkills{
			ProgrammingLanguages: trimAll(node.KeySkills.Languages.Items),
			Scripting:            trimAll(node.KeySkills.Scripting.Items),
			Frontend:             trimAll(node.KeySkills.Frontend.Items),
			Backend:              trimAll(node.KeySkills.Backend.Items),
			Databases:            trimAll(node.KeySkills.Databases.Items),
			TestingTools:         trimAll(node.KeySkills.Testing.Items),
		}
	}
	if node.Output != nil {
		internship.ProjectOutputs = trimAll(node.Output.Outputs)
	}
	return internship
}

// atoiOrZero parses a numeric field with a non-numeric fallback of 0.
func atoiOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// trimAll trims every item and normalizes an empty list to nil, so "section
// absent" and "section empty" are indistinguishable to callers.
func trimAll(items []string) []string {
	if len(items) == 0 {
		return nil
	}
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = strings.TrimSpace(item)
	}
	return out
}

// trimAllKeepEmpty trims items but keeps an empty (non-nil) slice, used for
// lesson lists where an empty section is still a section.
func trimAllKeepEmpty(items []string) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = strings.TrimSpace(item)
	}
	return out
}
