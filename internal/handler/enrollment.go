package handler

import (
	"io"

	"enrollhub/internal/domain"
	"enrollhub/internal/dto"
	"enrollhub/internal/service"
	"enrollhub/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// EnrollmentHandler handles wizard session requests
type EnrollmentHandler struct {
	service   service.EnrollmentService
	validator *validation.Validator
}

// NewEnrollmentHandler creates a new EnrollmentHandler instance
func NewEnrollmentHandler(enrollmentService service.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{
		service:   enrollmentService,
		validator: validation.NewValidator(),
	}
}

// Start godoc
// @Summary Open a new enrollment session
// @Description Creates a wizard session, optionally preselecting a course
// @Tags enrollments
// @Accept json
// @Produce json
// @Param request body dto.StartEnrollmentRequest false "Preselection"
// @Success 201 {object} dto.EnrollmentResponse
// @Router /enrollments [post]
func (h *EnrollmentHandler) Start(c *fiber.Ctx) error {
	var req dto.StartEnrollmentRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return domain.NewInvalidInputError("invalid request body")
		}
	}

	resp, err := h.service.StartSession(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Get godoc
// @Summary Get an enrollment session
// @Tags enrollments
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.EnrollmentResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /enrollments/{id} [get]
func (h *EnrollmentHandler) Get(c *fiber.Ctx) error {
	id, errs := h.sessionID(c)
	if errs != nil {
		return errs
	}
	resp, err := h.service.GetSession(id)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// UpdatePersonal godoc
// @Summary Update the personal details phase
// @Tags enrollments
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.UpdatePersonalRequest true "Personal details"
// @Success 200 {object} dto.EnrollmentResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /enrollments/{id}/personal [put]
func (h *EnrollmentHandler) UpdatePersonal(c *fiber.Ctx) error {
	id, errs := h.sessionID(c)
	if errs != nil {
		return errs
	}
	var req dto.UpdatePersonalRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}
	resp, err := h.service.UpdatePersonal(id, &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// UpdateSelection godoc
// @Summary Update the course or internship selection phase
// @Tags enrollments
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.UpdateSelectionRequest true "Selection details"
// @Success 200 {object} dto.EnrollmentResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /enrollments/{id}/selection [put]
func (h *EnrollmentHandler) UpdateSelection(c *fiber.Ctx) error {
	id, errs := h.sessionID(c)
	if errs != nil {
		return errs
	}
	var req dto.UpdateSelectionRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}
	resp, err := h.service.UpdateSelection(id, &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// UpdateAcknowledgement godoc
// @Summary Update the acknowledgement phase
// @Tags enrollments
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.UpdateAcknowledgementRequest true "Acknowledgement"
// @Success 200 {object} dto.EnrollmentResponse
// @Router /enrollments/{id}/acknowledgement [put]
func (h *EnrollmentHandler) UpdateAcknowledgement(c *fiber.Ctx) error {
	id, errs := h.sessionID(c)
	if errs != nil {
		return errs
	}
	var req dto.UpdateAcknowledgementRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}
	resp, err := h.service.UpdateAcknowledgement(id, &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// UploadResume godoc
// @Summary Attach a resume file to the session
// @Tags enrollments
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Session ID"
// @Param resume formData file true "Resume file"
// @Success 200 {object} dto.EnrollmentResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /enrollments/{id}/resume [post]
func (h *EnrollmentHandler) UploadResume(c *fiber.Ctx) error {
	id, errs := h.sessionID(c)
	if errs != nil {
		return errs
	}
	header, err := c.FormFile("resume")
	if err != nil {
		return domain.ValidationErrors{domain.NewMissingFieldError("resume")}
	}
	file, err := header.Open()
	if err != nil {
		return domain.NewInternalError("failed to open resume upload", err)
	}
	defer file.Close()
	content, err := io.ReadAll(file)
	if err != nil {
		return domain.NewInternalError("failed to read resume upload", err)
	}

	resp, err := h.service.AttachResume(id, header.Filename, content)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Advance godoc
// @Summary Advance the wizard to the next phase
// @Description Moves forward only when the current phase validates
// @Tags enrollments
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.EnrollmentResponse
// @Router /enrollments/{id}/advance [post]
func (h *EnrollmentHandler) Advance(c *fiber.Ctx) error {
	id, errs := h.sessionID(c)
	if errs != nil {
		return errs
	}
	resp, err := h.service.Advance(id)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Retreat godoc
// @Summary Step the wizard back one phase
// @Tags enrollments
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.EnrollmentResponse
// @Router /enrollments/{id}/retreat [post]
func (h *EnrollmentHandler) Retreat(c *fiber.Ctx) error {
	id, errs := h.sessionID(c)
	if errs != nil {
		return errs
	}
	resp, err := h.service.Retreat(id)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Jump godoc
// @Summary Jump to an arbitrary wizard phase
// @Description Backward jumps are unconditional; forward jumps validate every phase in between
// @Tags enrollments
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.JumpRequest true "Target phase"
// @Success 200 {object} dto.EnrollmentResponse
// @Router /enrollments/{id}/jump [post]
func (h *EnrollmentHandler) Jump(c *fiber.Ctx) error {
	id, errs := h.sessionID(c)
	if errs != nil {
		return errs
	}
	var req dto.JumpRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}
	resp, err := h.service.JumpTo(id, req.Phase)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Submit godoc
// @Summary Submit the completed enrollment
// @Description Validates every phase, assembles the submission and relays it to the mail backend
// @Tags enrollments
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.SubmitResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /enrollments/{id}/submit [post]
func (h *EnrollmentHandler) Submit(c *fiber.Ctx) error {
	id, errs := h.sessionID(c)
	if errs != nil {
		return errs
	}
	resp, err := h.service.Submit(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// sessionID extracts and validates the :id path parameter.
func (h *EnrollmentHandler) sessionID(c *fiber.Ctx) (string, error) {
	id := c.Params("id")
	if errs := h.validator.ValidateSessionID(id); len(errs) > 0 {
		return "", errs
	}
	return id, nil
}
