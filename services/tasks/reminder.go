package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"vaxportal/config"
	"vaxportal/models"
	"vaxportal/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeAppointmentReminder = "reminder:appointment"

// ReminderPayload is the task body for an appointment reminder.
type ReminderPayload struct {
	AppointmentID string `json:"appointmentId"`
	UserID        string `json:"userId"`
	ChildName     string `json:"childName"`
	Date          string `json:"date"`
	TimeStart     string `json:"timeStart"`
}

// NewAppointmentReminderTask builds the asynq task scheduled for fireAt.
func NewAppointmentReminderTask(payload ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeAppointmentReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}
	return task, opts, nil
}

// AsynqReminderScheduler schedules reminders on the asynq queue. It
// implements booking.ReminderScheduler.
type AsynqReminderScheduler struct {
	Client *asynq.Client
}

// NewReminderScheduler creates a scheduler backed by the reminder queue DB.
func NewReminderScheduler() *AsynqReminderScheduler {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	return &AsynqReminderScheduler{Client: client}
}

// ScheduleReminder enqueues a reminder for the day before the appointment
// at clinic opening time. Appointments too close for that window get no
// reminder.
func (s *AsynqReminderScheduler) ScheduleReminder(appt models.Appointment) error {
	fireAt, err := reminderTime(appt.AppointmentDate)
	if err != nil {
		return fmt.Errorf("failed to compute reminder time: %w", err)
	}
	if fireAt.Before(time.Now()) {
		utils.GetLogger().Debug("Skipping reminder for near-term appointment",
			zap.String("appointmentId", appt.ID))
		return nil
	}

	payload := ReminderPayload{
		AppointmentID: appt.ID,
		UserID:        appt.UserID,
		ChildName:     appt.ChildrenName,
		Date:          appt.AppointmentDate,
		TimeStart:     appt.TimeStart,
	}
	task, opts, err := NewAppointmentReminderTask(payload, fireAt)
	if err != nil {
		return fmt.Errorf("failed to build reminder task: %w", err)
	}
	if _, err := s.Client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder task: %w", err)
	}
	return nil
}

func reminderTime(appointmentDate string) (time.Time, error) {
	date, err := time.ParseInLocation(utils.DateLayout, appointmentDate, time.Local)
	if err != nil {
		return time.Time{}, err
	}

	open := config.AppConfig.ClinicOpen
	if open == "" {
		open = "07:30"
	}
	openT, err := time.Parse("15:04", open)
	if err != nil {
		return time.Time{}, err
	}

	dayBefore := date.AddDate(0, 0, -1)
	return time.Date(dayBefore.Year(), dayBefore.Month(), dayBefore.Day(),
		openT.Hour(), openT.Minute(), 0, 0, time.Local), nil
}
