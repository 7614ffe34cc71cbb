package service

import (
	"context"

	"enrollhub/internal/catalog"
	"enrollhub/internal/domain"
	"enrollhub/internal/dto"
	"enrollhub/internal/logger"

	"go.uber.org/zap"
)

// SourceAll is the default catalog source key.
const SourceAll = "all"

// SourceInternship names the internship program document.
const SourceInternship = "internship"

// CatalogService defines the read operations over the catalog store. All
// operations are read-only; nothing here mutates catalog state beyond the
// store's first-populate.
type CatalogService interface {
	ListCourses(ctx context.Context, source string) ([]dto.CourseSummaryResponse, error)
	GetCourseBySlug(ctx context.Context, source, slug string) (*dto.CourseResponse, error)
	GetCourseNames(ctx context.Context, source string) ([]string, error)
	GetSlugs(ctx context.Context, source string) ([]string, error)
	GetInternshipPrograms(ctx context.Context) ([]dto.ProgramResponse, error)
}

// catalogService implements CatalogService
type catalogService struct {
	store *catalog.Store
}

// NewCatalogService creates a new instance of catalogService
func NewCatalogService(store *catalog.Store) CatalogService {
	return &catalogService{store: store}
}

// ListCourses implements CatalogService
func (s *catalogService) ListCourses(ctx context.Context, source string) ([]dto.CourseSummaryResponse, error) {
	courses, err := s.store.Courses(ctx, source)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CourseSummaryResponse, 0, len(courses))
	for _, c := range courses {
		out = append(out, dto.CourseSummaryResponse{
			ID:          c.ID,
			Slug:        c.Slug,
			CourseName:  c.CourseName,
			Image:       c.Image,
			Category:    c.Category,
			Title:       c.Title,
			Description: c.Description,
			Duration:    c.Duration,
			Students:    c.Students,
		})
	}
	return out, nil
}

// GetCourseBySlug implements CatalogService. A missing slug yields a
// COURSE_NOT_FOUND domain error rather than a nil dereference downstream.
func (s *catalogService) GetCourseBySlug(ctx context.Context, source, slug string) (*dto.CourseResponse, error) {
	course, err := s.store.CourseBySlug(ctx, source, slug)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, domain.NewCourseNotFoundError(slug)
	}
	return mapCourse(course), nil
}

// GetCourseNames implements CatalogService, returning only non-empty names.
func (s *catalogService) GetCourseNames(ctx context.Context, source string) ([]string, error) {
	courses, err := s.store.Courses(ctx, source)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(courses))
	for _, c := range courses {
		if c.CourseName != "" {
			names = append(names, c.CourseName)
		}
	}
	return names, nil
}

// GetSlugs implements CatalogService. It publishes the source's slug list
// for consumers that cross-reference routes against the catalog.
func (s *catalogService) GetSlugs(ctx context.Context, source string) ([]string, error) {
	courses, err := s.store.Courses(ctx, source)
	if err != nil {
		return nil, err
	}
	slugs := make([]string, 0, len(courses))
	for _, c := range courses {
		slugs = append(slugs, c.Slug)
	}
	return slugs, nil
}

// GetInternshipPrograms implements CatalogService
func (s *catalogService) GetInternshipPrograms(ctx context.Context) ([]dto.ProgramResponse, error) {
	programs, err := s.store.Programs(ctx, SourceInternship)
	if err != nil {
		logger.Get().Error("Failed to load internship programs", zap.Error(err))
		return nil, err
	}
	out := make([]dto.ProgramResponse, 0, len(programs))
	for _, p := range programs {
		pr := dto.ProgramResponse{Name: p.Name, Level: p.Level}
		for _, in := range p.Internships {
			pr.Internships = append(pr.Internships, dto.InternshipResponse{
				Title:       in.Title,
				Category:    in.Category,
				Description: in.Description,
				Duration:    in.Duration,
				StartDate:   in.StartDate,
				KeySkills: dto.KeySkillsResponse{
					ProgrammingLanguages: in.KeySkills.ProgrammingLanguages,
					Scripting:            in.KeySkills.Scripting,
					Frontend:             in.KeySkills.Frontend,
					Backend:              in.KeySkills.Backend,
					Databases:            in.KeySkills.Databases,
					TestingTools:         in.KeySkills.TestingTools,
				},
				ProjectOutputs: in.ProjectOutputs,
			})
		}
		out = append(out, pr)
	}
	return out, nil
}

func mapCourse(c *domain.Course) *dto.CourseResponse {
	resp := &dto.CourseResponse{
		ID:           c.ID,
		Slug:         c.Slug,
		CourseName:   c.CourseName,
		Image:        c.Image,
		Video:        c.Video,
		Category:     c.Category,
		Title:        c.Title,
		Description:  c.Description,
		Duration:     c.Duration,
		Students:     c.Students,
		Overview:     c.Overview,
		Highlights:   c.Highlights,
		CareerScope:  c.CareerScope,
		CanEnroll:    c.CanEnroll,
		ToolsCovered: c.ToolsCovered,
	}
	for _, f := range c.FAQ {
		resp.FAQ = append(resp.FAQ, dto.FaqResponse{ID: f.ID, Question: f.Question, Answer: f.Answer})
	}
	if c.Syllabus != nil {
		syl := &dto.SyllabusResponse{
			Sections: c.Syllabus.Sections,
			Lessons:  c.Syllabus.Lessons,
			Duration: c.Syllabus.Duration,
		}
		for _, sec := range c.Syllabus.SectionList {
			syl.List = append(syl.List, dto.SectionResponse{
				ID:              sec.ID,
				Title:           sec.Title,
				DurationMinutes: sec.DurationMinutes,
				Lessons:         sec.Lessons,
			})
		}
		resp.Syllabus = syl
	}
	return resp
}
