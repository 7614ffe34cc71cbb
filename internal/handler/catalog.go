package handler

import (
	"enrollhub/internal/service"
	"enrollhub/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// CatalogHandler handles catalog read requests
type CatalogHandler struct {
	service   service.CatalogService
	validator *validation.Validator
}

// NewCatalogHandler creates a new CatalogHandler instance
func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		service:   catalogService,
		validator: validation.NewValidator(),
	}
}

// ListCourses godoc
// @Summary List catalog courses
// @Description Returns the course list of a catalog source
// @Tags catalog
// @Produce json
// @Param source query string false "Catalog source key" default(all)
// @Success 200 {array} dto.CourseSummaryResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /courses [get]
func (h *CatalogHandler) ListCourses(c *fiber.Ctx) error {
	source := c.Query("source", service.SourceAll)
	if errs := h.validator.ValidateSource(source); len(errs) > 0 {
		return errs
	}

	courses, err := h.service.ListCourses(c.Context(), source)
	if err != nil {
		return err
	}
	return c.JSON(courses)
}

// GetCourseBySlug godoc
// @Summary Get one course by slug
// @Description Returns the full course record for an exact slug match
// @Tags catalog
// @Produce json
// @Param slug path string true "Course slug"
// @Param source query string false "Catalog source key" default(all)
// @Success 200 {object} dto.CourseResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /courses/{slug} [get]
func (h *CatalogHandler) GetCourseBySlug(c *fiber.Ctx) error {
	source := c.Query("source", service.SourceAll)
	slug := c.Params("slug")
	if errs := append(h.validator.ValidateSource(source), h.validator.ValidateSlug(slug)...); len(errs) > 0 {
		return errs
	}

	course, err := h.service.GetCourseBySlug(c.Context(), source, slug)
	if err != nil {
		return err
	}
	return c.JSON(course)
}

// GetCourseNames godoc
// @Summary List course names
// @Description Returns the non-empty course names of a catalog source
// @Tags catalog
// @Produce json
// @Param source query string false "Catalog source key" default(all)
// @Success 200 {array} string
// @Router /course-names [get]
func (h *CatalogHandler) GetCourseNames(c *fiber.Ctx) error {
	source := c.Query("source", service.SourceAll)
	if errs := h.validator.ValidateSource(source); len(errs) > 0 {
		return errs
	}

	names, err := h.service.GetCourseNames(c.Context(), source)
	if err != nil {
		return err
	}
	return c.JSON(names)
}

// GetInternships godoc
// @Summary List internship programs
// @Description Returns every internship program with its offerings
// @Tags catalog
// @Produce json
// @Success 200 {array} dto.ProgramResponse
// @Router /internships [get]
func (h *CatalogHandler) GetInternships(c *fiber.Ctx) error {
	programs, err := h.service.GetInternshipPrograms(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(programs)
}
