package reminders

import (
	"caps-service/internal/app/config"
	"caps-service/internal/app/models"
	"caps-service/internal/app/services/core/appointments"
	"caps-service/internal/app/services/core/users"
	"caps-service/internal/app/services/shared/locker"
	"caps-service/internal/app/services/shared/mailer"
	"caps-service/internal/app/services/shared/redis"
	"caps-service/internal/pkg/constvars"
	"caps-service/internal/pkg/dto/requests"
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Worker periodically emails students about their upcoming appointments.
// Only one instance across the deployment sends in any given cycle; the
// leader lock in Redis decides which.
type Worker struct {
	log                   *zap.Logger
	cfg                   *config.InternalConfig
	locker                locker.LockerService
	redisRepository       redis.RedisRepository
	appointmentRepository appointments.AppointmentRepository
	userRepository        users.UserRepository
	mailerService         mailer.MailerService
	stop                  chan struct{}
	done                  chan struct{}
}

func NewWorker(
	log *zap.Logger,
	cfg *config.InternalConfig,
	lockerService locker.LockerService,
	redisRepository redis.RedisRepository,
	appointmentRepository appointments.AppointmentRepository,
	userRepository users.UserRepository,
	mailerService mailer.MailerService,
) *Worker {
	return &Worker{
		log:                   log,
		cfg:                   cfg,
		locker:                lockerService,
		redisRepository:       redisRepository,
		appointmentRepository: appointmentRepository,
		userRepository:        userRepository,
		mailerService:         mailerService,
		stop:                  make(chan struct{}),
		done:                  make(chan struct{}),
	}
}

// Start begins the periodic loop in its own goroutine.
func (w *Worker) Start(ctx context.Context) {
	interval := time.Duration(w.cfg.Reminder.IntervalInMinutes) * time.Minute
	go func() {
		defer close(w.done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-w.stop:
				return
			case <-ticker.C:
				w.runOnce(ctx)
			}
		}
	}()
}

// Stop signals the loop to exit and waits for the in-flight cycle to finish.
func (w *Worker) Stop() {
	select {
	case <-w.stop:
	default:
		close(w.stop)
	}
	<-w.done
}

func (w *Worker) runOnce(ctx context.Context) {
	ttl := time.Duration(w.cfg.Reminder.IntervalInMinutes) * time.Minute
	acquired, lockValue, err := w.locker.TryLock(ctx, constvars.RedisReminderWorkerLockKey, ttl)
	if err != nil {
		w.log.Warn("reminders.Worker leader lock attempt failed", zap.Error(err))
		return
	}
	if !acquired {
		return
	}
	defer w.locker.Unlock(ctx, constvars.RedisReminderWorkerLockKey, lockValue)

	now := time.Now().UTC()
	until := now.Add(time.Duration(w.cfg.Reminder.LookaheadInHours) * time.Hour)

	appointmentList, err := w.appointmentRepository.FindScheduledBetween(ctx, now, until)
	if err != nil {
		w.log.Error("reminders.Worker error querying upcoming appointments", zap.Error(err))
		return
	}

	for i := range appointmentList {
		w.remind(ctx, &appointmentList[i])
	}
}

func (w *Worker) remind(ctx context.Context, appointment *models.Appointment) {
	dedupeKey := fmt.Sprintf(constvars.RedisReminderSentKeyFormat,
		appointment.ID, appointment.Date.Format(constvars.DateOnlyFormat))

	// The dedupe marker outlives the lookahead window so a reminder goes out
	// at most once per appointment per day.
	ttl := time.Duration(w.cfg.Reminder.LookaheadInHours+24) * time.Hour
	sent, err := w.redisRepository.TrySetNX(ctx, dedupeKey, "1", ttl)
	if err != nil {
		w.log.Warn("reminders.Worker dedupe check failed",
			zap.String("appointment_id", appointment.ID),
			zap.Error(err),
		)
		return
	}
	if !sent {
		return
	}

	student, err := w.userRepository.FindByID(ctx, appointment.StudentID)
	if err != nil || student == nil {
		w.log.Warn("reminders.Worker student lookup failed",
			zap.String("appointment_id", appointment.ID),
			zap.Error(err),
		)
		// Let the next cycle retry.
		_ = w.redisRepository.Delete(ctx, dedupeKey)
		return
	}

	therapistName := appointment.TherapistID
	therapist, err := w.userRepository.FindByID(ctx, appointment.TherapistID)
	if err == nil && therapist != nil {
		therapistName = therapist.Username
	}

	payload := &requests.EmailPayload{
		To:      student.Email,
		Subject: constvars.EmailReminderSubject,
		Body: fmt.Sprintf(constvars.EmailReminderBodyFormat,
			therapistName,
			appointment.Date.Format(time.RFC1123),
			appointment.Status,
		),
	}

	if err := w.mailerService.Enqueue(ctx, payload); err != nil {
		w.log.Error("reminders.Worker error enqueueing reminder email",
			zap.String("appointment_id", appointment.ID),
			zap.Error(err),
		)
		// Let the next cycle retry.
		_ = w.redisRepository.Delete(ctx, dedupeKey)
		return
	}

	w.log.Info("reminders.Worker reminder enqueued",
		zap.String("appointment_id", appointment.ID),
		zap.String("recipient", student.Email),
	)
}
