package form

import (
	"context"
	"time"

	"leadform/clients/consultation"
	leadRepo "leadform/database/repository/lead"
	"leadform/models"
	"leadform/services/attribution"

	"go.uber.org/zap"
)

// FormFlowService drives a visitor through the multi-step form wizard.
type FormFlowService interface {
	StartSession(ctx context.Context, page string, attr attribution.Params) (*models.FormSessionResponse, error)
	GetSession(ctx context.Context, sessionID string) (*models.FormSessionResponse, error)
	UpdateFields(ctx context.Context, sessionID string, update models.FieldUpdate) (*models.FormSessionResponse, error)
	AdvanceStep(ctx context.Context, sessionID string) (*models.FormSessionResponse, error)
	ToggleCourse(ctx context.Context, sessionID, course string) (*models.FormSessionResponse, error)
	SetCustomCourse(ctx context.Context, sessionID, custom string) (*models.FormSessionResponse, error)
	Submit(ctx context.Context, sessionID string) (*models.FormSessionResponse, error)
}

// FollowupScheduler enqueues the delayed follow-up task for an accepted lead.
type FollowupScheduler interface {
	ScheduleFollowup(ctx context.Context, payload models.FollowupPayload, delay time.Duration) error
}

// FollowupDelay is how long after acceptance the follow-up task fires.
const FollowupDelay = 15 * time.Minute

// DefaultFormFlowService implements FormFlowService.
type DefaultFormFlowService struct {
	Registry     *PageRegistry
	Store        SessionStore
	Consultation consultation.Client
	Leads        leadRepo.LeadRepository
	Followups    FollowupScheduler
	Logger       *zap.Logger
}
