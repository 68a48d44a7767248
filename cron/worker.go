package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"vaxportal/config"
	"vaxportal/models"
	"vaxportal/services/notification"
	"vaxportal/services/tasks"
	"vaxportal/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitReminderWorker runs the async reminder worker in the background.
func InitReminderWorker(notifSvc notification.NotificationService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
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
	mux.HandleFunc(tasks.TypeAppointmentReminder, handleReminderTask(notifSvc))

	go func() {
		logger := utils.GetLogger()
		logger.Sugar().Info("Starting reminder worker...")

		const maxAttempts = 5
		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				logger.Sugar().Warnf("Reminder worker attempt %d/%d failed: %v", attempts, maxAttempts, err)
				if attempts == maxAttempts {
					logger.Sugar().Fatal("Reminder worker: max retry attempts reached")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload tasks.ReminderPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return fmt.Errorf("failed to decode reminder payload: %w", err)
		}

		body := fmt.Sprintf("%s has a vaccination appointment on %s at %s.",
			payload.ChildName, utils.FormatDate(payload.Date), payload.TimeStart)
		err := notifSvc.Notify(ctx, payload.UserID, models.NotificationReminder,
			"Appointment reminder", body, map[string]any{"appointmentId": payload.AppointmentID})
		if err != nil {
			utils.GetLogger().Error("Failed to deliver reminder", zap.Error(err))
			return err
		}
		return nil
	}
}
