package service

import (
	"context"
	"sync"
	"time"

	"enrollhub/internal/adapter/mail"
	"enrollhub/internal/config"
	"enrollhub/internal/country"
	"enrollhub/internal/domain"
	"enrollhub/internal/dto"
	"enrollhub/internal/logger"
	"enrollhub/internal/util"
	"enrollhub/internal/wizard"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// EnrollmentService drives wizard sessions: creation, phase updates and
// transitions, and final submission.
type EnrollmentService interface {
	StartSession(ctx context.Context, req *dto.StartEnrollmentRequest) (*dto.EnrollmentResponse, error)
	GetSession(id string) (*dto.EnrollmentResponse, error)
	UpdatePersonal(id string, req *dto.UpdatePersonalRequest) (*dto.EnrollmentResponse, error)
	UpdateSelection(id string, req *dto.UpdateSelectionRequest) (*dto.EnrollmentResponse, error)
	UpdateAcknowledgement(id string, req *dto.UpdateAcknowledgementRequest) (*dto.EnrollmentResponse, error)
	AttachResume(id, filename string, content []byte) (*dto.EnrollmentResponse, error)
	Advance(id string) (*dto.EnrollmentResponse, error)
	Retreat(id string) (*dto.EnrollmentResponse, error)
	JumpTo(id string, phase int) (*dto.EnrollmentResponse, error)
	Submit(ctx context.Context, id string) (*dto.SubmitResponse, error)
}

// enrollmentService implements EnrollmentService
type enrollmentService struct {
	catalog   CatalogService
	countries *country.Resolver
	sender    mail.Sender
	cfg       *config.Config

	// Sessions are mutated under one coarse lock; the go-cache store only
	// guards its own map, not the wizard state inside an entry.
	mu       sync.Mutex
	sessions *gocache.Cache
}

// NewEnrollmentService creates a new instance of enrollmentService
func NewEnrollmentService(
	catalogService CatalogService,
	countries *country.Resolver,
	sender mail.Sender,
	cfg *config.Config,
) EnrollmentService {
	ttl := cfg.Enrollment.SessionTTL
	return &enrollmentService{
		catalog:   catalogService,
		countries: countries,
		sender:    sender,
		cfg:       cfg,
		sessions:  gocache.New(ttl, ttl/2),
	}
}

// StartSession implements EnrollmentService. Catalog failures degrade to an
// empty course/program list: the wizard still works, without preselection or
// the program cross-check.
func (s *enrollmentService) StartSession(ctx context.Context, req *dto.StartEnrollmentRequest) (*dto.EnrollmentResponse, error) {
	names, err := s.catalog.GetCourseNames(ctx, SourceAll)
	if err != nil {
		logger.Get().Warn("Course names unavailable for new session", zap.Error(err))
		names = nil
	}
	programs, err := s.programs(ctx)
	if err != nil {
		logger.Get().Warn("Internship programs unavailable for new session", zap.Error(err))
		programs = nil
	}

	state := wizard.New(s.countries, names, programs, s.cfg.Enrollment.MinimumAge)
	if req != nil && req.SelectedCourse != "" {
		if applied := state.ApplyPreselection(req.SelectedCourse); !applied {
			logger.Get().Info("Ignoring unknown preselected course",
				zap.String("selected_course", req.SelectedCourse))
		}
	}

	id := util.NewULID()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions.Set(id, state, gocache.DefaultExpiration)
	return s.view(id, state), nil
}

// GetSession implements EnrollmentService
func (s *enrollmentService) GetSession(id string) (*dto.EnrollmentResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, err := s.state(id)
	if err != nil {
		return nil, err
	}
	return s.view(id, state), nil
}

// UpdatePersonal implements EnrollmentService
func (s *enrollmentService) UpdatePersonal(id string, req *dto.UpdatePersonalRequest) (*dto.EnrollmentResponse, error) {
	dob, verr := parseISODate("dob", req.DOB)
	if verr != nil {
		return nil, domain.ValidationErrors{*verr}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	state, err := s.state(id)
	if err != nil {
		return nil, err
	}

	resumeName, resume := state.Personal.ResumeName, state.Personal.Resume
	state.Personal = wizard.PersonalData{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Gender:     req.Gender,
		DOB:        dob,
		Occupation: req.Occupation,
		Address:    req.Address,
		City:       req.City,
		Pincode:    req.Pincode,
		Country:    req.Country,
		Mobile:     req.Mobile,
		Email:      req.Email,
		About:      req.About,
		ResumeName: resumeName,
		Resume:     resume,
	}
	state.MarkAllTouched(wizard.PhasePersonal)
	s.touchSession(id, state)
	return s.view(id, state), nil
}

// UpdateSelection implements EnrollmentService. The discriminant swap and
// the plannedStart/plannedEnd cascade need no special handling here: phase
// validity is recomputed from the whole snapshot on every read.
func (s *enrollmentService) UpdateSelection(id string, req *dto.UpdateSelectionRequest) (*dto.EnrollmentResponse, error) {
	var verrs domain.ValidationErrors
	start, verr := parseISODate("planned_start", req.PlannedStart)
	if verr != nil {
		verrs = append(verrs, *verr)
	}
	end, verr := parseISODate("planned_end", req.PlannedEnd)
	if verr != nil {
		verrs = append(verrs, *verr)
	}
	switch req.Type {
	case "", string(wizard.DiscriminantCourse), string(wizard.DiscriminantInternship):
	default:
		verrs = append(verrs, domain.NewInvalidFormatError("type", req.Type))
	}
	if len(verrs) > 0 {
		return nil, verrs
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	state, err := s.state(id)
	if err != nil {
		return nil, err
	}

	state.SetDiscriminant(wizard.Discriminant(req.Type))
	state.Selection.SelectedCourse = req.SelectedCourse
	state.Selection.Schedule = req.Schedule
	state.Selection.Mode = req.Mode
	state.Selection.PlannedStart = start
	state.Selection.PlannedEnd = end
	state.Selection.Comments = req.Comments
	state.Selection.SelectedProgram = req.SelectedProgram
	state.Selection.SelectedInternship = req.SelectedInternship
	state.MarkAllTouched(wizard.PhaseSelection)
	s.touchSession(id, state)
	return s.view(id, state), nil
}

// UpdateAcknowledgement implements EnrollmentService
func (s *enrollmentService) UpdateAcknowledgement(id string, req *dto.UpdateAcknowledgementRequest) (*dto.EnrollmentResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, err := s.state(id)
	if err != nil {
		return nil, err
	}
	state.Acknowledgement.Declaration = req.Declaration
	state.Acknowledgement.CaptchaToken = req.RecaptchaToken
	state.MarkAllTouched(wizard.PhaseAcknowledgement)
	s.touchSession(id, state)
	return s.view(id, state), nil
}

// AttachResume implements EnrollmentService
func (s *enrollmentService) AttachResume(id, filename string, content []byte) (*dto.EnrollmentResponse, error) {
	if len(content) == 0 {
		return nil, domain.ValidationErrors{domain.NewMissingFieldError("resume")}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	state, err := s.state(id)
	if err != nil {
		return nil, err
	}
	state.Personal.ResumeName = filename
	state.Personal.Resume = content
	state.Touch(wizard.PhasePersonal, "resume")
	s.touchSession(id, state)
	return s.view(id, state), nil
}

// Advance implements EnrollmentService
func (s *enrollmentService) Advance(id string) (*dto.EnrollmentResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, err := s.state(id)
	if err != nil {
		return nil, err
	}
	state.Advance()
	s.touchSession(id, state)
	return s.view(id, state), nil
}

// Retreat implements EnrollmentService
func (s *enrollmentService) Retreat(id string) (*dto.EnrollmentResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, err := s.state(id)
	if err != nil {
		return nil, err
	}
	state.Retreat()
	s.touchSession(id, state)
	return s.view(id, state), nil
}

// JumpTo implements EnrollmentService
func (s *enrollmentService) JumpTo(id string, phase int) (*dto.EnrollmentResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, err := s.state(id)
	if err != nil {
		return nil, err
	}
	state.JumpTo(wizard.Phase(phase))
	s.touchSession(id, state)
	return s.view(id, state), nil
}

// Submit implements EnrollmentService. On delivery the session resets to
// phase 1 with empty snapshots; on failure every entered value is preserved
// so the user can retry.
func (s *enrollmentService) Submit(ctx context.Context, id string) (*dto.SubmitResponse, error) {
	s.mu.Lock()
	state, err := s.state(id)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}

	if !state.Acknowledgement.Declaration {
		s.mu.Unlock()
		return nil, domain.ValidationErrors{
			domain.NewFieldError("declaration", "kindly acknowledge the agreement to proceed"),
		}
	}
	if state.Acknowledgement.CaptchaToken == "" {
		s.mu.Unlock()
		return nil, domain.ValidationErrors{
			domain.NewFieldError("recaptchaToken", "please complete the captcha verification"),
		}
	}
	for _, phase := range []wizard.Phase{wizard.PhasePersonal, wizard.PhaseSelection} {
		if errs := state.Validate(phase); len(errs) > 0 {
			state.MarkAllTouched(phase)
			s.mu.Unlock()
			return nil, errs
		}
	}

	payload, attachment := wizard.Assemble(state)
	s.mu.Unlock()

	// The send happens outside the lock; the session stays untouched until
	// the outcome is known.
	status, err := s.sender.Send(ctx, payload, attachment)
	if err != nil || !status.Delivered() {
		logger.Get().Error("Enrollment submission failed",
			zap.String("session_id", id),
			zap.String("status", string(status)),
			zap.Error(err),
		)
		return nil, domain.NewMailDeliveryError(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if current, found := s.sessions.Get(id); found {
		current.(*wizard.State).Reset()
	}
	logger.Get().Info("Enrollment submitted",
		zap.String("session_id", id),
		zap.String("status", string(status)),
	)
	return &dto.SubmitResponse{Status: "success"}, nil
}

func (s *enrollmentService) programs(ctx context.Context) ([]domain.Program, error) {
	responses, err := s.catalog.GetInternshipPrograms(ctx)
	if err != nil {
		return nil, err
	}
	programs := make([]domain.Program, 0, len(responses))
	for _, pr := range responses {
		p := domain.Program{Name: pr.Name, Level: pr.Level}
		for _, in := range pr.Internships {
			p.Internships = append(p.Internships, domain.Internship{
				Title:    in.Title,
				Category: in.Category,
			})
		}
		programs = append(programs, p)
	}
	return programs, nil
}

// state looks a session up; callers hold s.mu.
func (s *enrollmentService) state(id string) (*wizard.State, error) {
	entry, found := s.sessions.Get(id)
	if !found {
		return nil, domain.NewSessionNotFoundError(id)
	}
	return entry.(*wizard.State), nil
}

// touchSession refreshes the TTL of an active session; callers hold s.mu.
func (s *enrollmentService) touchSession(id string, state *wizard.State) {
	s.sessions.Set(id, state, gocache.DefaultExpiration)
}

func (s *enrollmentService) view(id string, state *wizard.State) *dto.EnrollmentResponse {
	resp := &dto.EnrollmentResponse{
		ID:                   id,
		Phase:                int(state.Phase),
		Discriminant:         string(state.Selection.Type),
		PersonalValid:        state.PhaseValid(wizard.PhasePersonal),
		SelectionValid:       state.PhaseValid(wizard.PhaseSelection),
		AcknowledgementValid: state.PhaseValid(wizard.PhaseAcknowledgement),
		SelectedCourse:       state.Selection.SelectedCourse,
		SelectedProgram:      state.Selection.SelectedProgram,
		ResumeUploaded:       len(state.Personal.Resume) > 0,
	}
	for _, err := range state.TouchedErrors(state.Phase) {
		resp.FieldErrors = append(resp.FieldErrors, dto.FieldErrorResponse{
			Field:   err.Field,
			Code:    string(err.Code),
			Message: err.Message,
		})
	}
	for _, in := range state.AvailableInternships() {
		resp.AvailableInternships = append(resp.AvailableInternships, in.Title)
	}
	return resp
}

// parseISODate parses an optional 2006-01-02 date; empty input is the zero
// time, a malformed value is a field error.
func parseISODate(field, value string) (time.Time, *domain.ValidationError) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		verr := domain.NewInvalidFormatError(field, value)
		return time.Time{}, &verr
	}
	return t, nil
}
