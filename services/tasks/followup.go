package tasks

import (
	"context"
	"encoding/json"
	"time"

	"leadform/config"
	"leadform/models"

	"github.com/hibiken/asynq"
)

const TypeLeadFollowup = "lead:followup"

// NewLeadFollowupTask builds the delayed follow-up task for one lead.
func NewLeadFollowupTask(payload models.FollowupPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeLeadFollowup, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// AsynqFollowupScheduler enqueues follow-up tasks on the shared Redis queue.
type AsynqFollowupScheduler struct {
	client *asynq.Client
}

// NewAsynqFollowupScheduler creates a scheduler bound to the follow-up queue DB.
func NewAsynqFollowupScheduler() *AsynqFollowupScheduler {
	return &AsynqFollowupScheduler{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisFollowupDB,
		}),
	}
}

// ScheduleFollowup enqueues one follow-up task to fire after delay.
func (s *AsynqFollowupScheduler) ScheduleFollowup(ctx context.Context, payload models.FollowupPayload, delay time.Duration) error {
	task, opts, err := NewLeadFollowupTask(payload, time.Now().Add(delay))
	if err != nil {
		return err
	}
	_, err = s.client.EnqueueContext(ctx, task, opts...)
	return err
}
