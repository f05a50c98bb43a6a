package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"leadform/config"
	leadRepo "leadform/database/repository/lead"
	"leadform/models"
	"leadform/services/tasks"

	"github.com/hibiken/asynq"
)

// InitFollowupWorker runs the async worker in background.
func InitFollowupWorker(leads leadRepo.LeadRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisFollowupDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeLeadFollowup, handleFollowupTask(leads))

	// Start async worker with retry logic
	go func() {
		log.Println("[FollowupWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[FollowupWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[FollowupWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleFollowupTask(leads leadRepo.LeadRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.FollowupPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[FollowupHandler] Invalid payload: %v", err)
			return err
		}

		lead, err := leads.GetByID(ctx, p.LeadID)
		if err != nil {
			log.Printf("[FollowupHandler] Lead %s no longer present, skipping follow-up", p.LeadID)
			return nil
		}
		if lead.FollowedUp {
			return nil
		}

		log.Printf("[FollowupHandler] Follow-up due for lead %s (%s, page %s)", lead.ID, lead.Record.Name, p.Page)

		if err := leads.MarkFollowedUp(ctx, lead.ID); err != nil {
			log.Printf("[FollowupHandler] Failed to flag lead %s: %v", lead.ID, err)
			return err
		}
		return nil
	}
}
