package form

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"leadform/clients/consultation"
	"leadform/models"
	"leadform/services/attribution"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GenericSubmitFailure is shown when the consultation endpoint fails without
// a usable message.
const GenericSubmitFailure = "상담 신청에 실패했습니다. 잠시 후 다시 시도해주세요."

// StartSession creates a new form session for one page view. The attribution
// parameters are read exactly once here; the derived click-source label is
// attached to every later submission from this session.
func (s *DefaultFormFlowService) StartSession(ctx context.Context, page string, attr attribution.Params) (*models.FormSessionResponse, error) {
	def, ok := s.Registry.Get(page)
	if !ok {
		return nil, ErrUnknownPage
	}

	sess := &models.FormSession{
		SessionID:   uuid.New().String(),
		Page:        def.Page,
		ClickSource: attribution.Label(def.Campaign, attr),
		Step:        def.InitialStep,
	}
	if err := s.Store.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sessionResponse(def, sess), nil
}

// GetSession returns the current state of a session.
func (s *DefaultFormFlowService) GetSession(ctx context.Context, sessionID string) (*models.FormSessionResponse, error) {
	sess, def, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return sessionResponse(def, sess), nil
}

// UpdateFields merges a partial field update into the session, re-formatting
// the phone number and recomputing validity.
func (s *DefaultFormFlowService) UpdateFields(ctx context.Context, sessionID string, update models.FieldUpdate) (*models.FormSessionResponse, error) {
	sess, def, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Step == models.StepDone {
		return nil, ErrAlreadyCompleted
	}

	applyUpdate(&sess.Fields, update)

	if err := s.Store.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sessionResponse(def, sess), nil
}

// AdvanceStep moves the course page from the selection step to the contact
// step. Steps only ever move forward; the contact step is left via Submit.
func (s *DefaultFormFlowService) AdvanceStep(ctx context.Context, sessionID string) (*models.FormSessionResponse, error) {
	sess, def, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Step == models.StepDone {
		return nil, ErrAlreadyCompleted
	}
	if sess.Step != models.StepCourse {
		return nil, ErrInvalidStep
	}

	sess.Step = models.StepContact
	if err := s.Store.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sessionResponse(def, sess), nil
}

// ToggleCourse adds or removes one course from the selection, keeping toggle
// order for the ones that stay.
func (s *DefaultFormFlowService) ToggleCourse(ctx context.Context, sessionID, course string) (*models.FormSessionResponse, error) {
	sess, def, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !def.CoursePicker {
		return nil, ErrInvalidStep
	}
	if sess.Step == models.StepDone {
		return nil, ErrAlreadyCompleted
	}

	selected := sess.Fields.Courses
	removed := false
	for i, c := range selected {
		if c == course {
			sess.Fields.Courses = append(selected[:i], selected[i+1:]...)
			removed = true
			break
		}
	}
	if !removed {
		sess.Fields.Courses = append(selected, course)
	}

	if err := s.Store.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sessionResponse(def, sess), nil
}

// SetCustomCourse stores the free-text course entry.
func (s *DefaultFormFlowService) SetCustomCourse(ctx context.Context, sessionID, custom string) (*models.FormSessionResponse, error) {
	sess, def, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !def.CoursePicker {
		return nil, ErrInvalidStep
	}
	if sess.Step == models.StepDone {
		return nil, ErrAlreadyCompleted
	}

	sess.Fields.CustomCourse = strings.TrimSpace(custom)
	if err := s.Store.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sessionResponse(def, sess), nil
}

// Submit validates the record, takes the per-session submit lock, posts the
// assembled payload to the consultation endpoint and advances the wizard to
// the terminal step. A failed submission keeps the current step so the
// visitor can retry; nothing retries automatically.
func (s *DefaultFormFlowService) Submit(ctx context.Context, sessionID string) (*models.FormSessionResponse, error) {
	sess, def, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Step == models.StepDone {
		return nil, ErrAlreadyCompleted
	}
	if !Submittable(def, sess.Fields) {
		return nil, ErrNotSubmittable
	}

	locked, err := s.Store.AcquireSubmitLock(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !locked {
		return nil, ErrSubmitInFlight
	}
	defer func() {
		if err := s.Store.ReleaseSubmitLock(ctx, sessionID); err != nil {
			s.logger().Warn("failed to release submit lock", zap.String("sessionId", sessionID), zap.Error(err))
		}
	}()

	record := BuildRecord(sess)
	if err := s.Consultation.SubmitConsultation(ctx, record); err != nil {
		s.logger().Warn("consultation submission failed",
			zap.String("sessionId", sessionID),
			zap.String("page", sess.Page),
			zap.Error(err))
		return nil, submitFailure(err)
	}

	s.storeLead(ctx, sess, record)

	sess.Step = models.StepDone
	if err := s.Store.Save(ctx, sess); err != nil {
		return nil, err
	}

	s.logger().Info("lead captured",
		zap.String("sessionId", sessionID),
		zap.String("page", sess.Page),
		zap.String("clickSource", sess.ClickSource))
	return sessionResponse(def, sess), nil
}

// load fetches a session together with its page definition.
func (s *DefaultFormFlowService) load(ctx context.Context, sessionID string) (*models.FormSession, models.FormDefinition, error) {
	sess, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, models.FormDefinition{}, err
	}
	def, ok := s.Registry.Get(sess.Page)
	if !ok {
		return nil, models.FormDefinition{}, fmt.Errorf("session %s references unregistered page %q", sessionID, sess.Page)
	}
	return sess, def, nil
}

// storeLead keeps the local audit copy and queues the follow-up. Neither may
// fail the submission once the external endpoint accepted the record.
func (s *DefaultFormFlowService) storeLead(ctx context.Context, sess *models.FormSession, record models.ConsultationRecord) {
	if s.Leads == nil {
		return
	}
	leadID, err := s.Leads.Create(ctx, models.Lead{Record: record})
	if err != nil {
		s.logger().Error("failed to store lead audit copy", zap.String("sessionId", sess.SessionID), zap.Error(err))
		return
	}
	if s.Followups == nil {
		return
	}
	payload := models.FollowupPayload{LeadID: leadID, Page: sess.Page}
	if err := s.Followups.ScheduleFollowup(ctx, payload, FollowupDelay); err != nil {
		s.logger().Error("failed to schedule lead follow-up", zap.String("leadId", leadID), zap.Error(err))
	}
}

func (s *DefaultFormFlowService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return zap.L()
}

func applyUpdate(f *models.FormFields, update models.FieldUpdate) {
	if update.Name != nil {
		f.Name = *update.Name
	}
	if update.Phone != nil {
		f.Phone = FormatPhone(*update.Phone)
	}
	if update.WantsEmployment != nil {
		f.WantsEmployment = *update.WantsEmployment
	}
	if update.WantsLicense != nil {
		f.WantsLicense = *update.WantsLicense
	}
	if update.PreferredDate != nil {
		f.PreferredDate = *update.PreferredDate
	}
	if update.Hope != nil {
		f.Hope = *update.Hope
	}
	if update.PrivacyAgreed != nil {
		f.PrivacyAgreed = *update.PrivacyAgreed
	}
}

// submitFailure wraps an endpoint error with the user-facing message: the
// server-provided one when present, the generic fallback otherwise.
func submitFailure(err error) error {
	var apiErr *consultation.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return NewSubmitError(apiErr.Message)
	}
	return NewSubmitError(GenericSubmitFailure)
}
