package cron

import (
	"context"
	"encoding/json"
	"log"

	"pawspa/models"
	"pawspa/services/notification"
	"pawspa/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitEmailWorker runs the async email worker in background and returns the
// server handle for graceful shutdown.
func InitEmailWorker(mailer *notification.Mailer) *asynq.Server {
	srv := asynq.NewServer(
		utils.QueueRedisOpt(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(notification.TypeEmailSend, handleEmailTask(mailer))

	go func() {
		log.Println("[EmailWorker] starting async worker...")
		if err := srv.Run(mux); err != nil {
			log.Fatalf("[EmailWorker] failed to start worker: %v", err)
		}
	}()

	return srv
}

// handleEmailTask sends one queued email. Failures are logged and retried by
// asynq up to the task's MaxRetry; they are never surfaced to the end user.
func handleEmailTask(mailer *notification.Mailer) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		var payload models.EmailPayload
		if err := json.Unmarshal(task.Payload(), &payload); err != nil {
			logger.Error("invalid email task payload", zap.Error(err))
			// Malformed payloads will never succeed; drop instead of retrying.
			return nil
		}

		if err := mailer.Send(payload); err != nil {
			logger.Warn("email delivery failed",
				zap.String("type", string(payload.Type)),
				zap.String("to", payload.To),
				zap.Error(err))
			return err
		}

		logger.Info("email delivered",
			zap.String("type", string(payload.Type)),
			zap.String("to", payload.To))
		return nil
	}
}
