package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"mentorhub/core/config"
	"mentorhub/core/database"
	"mentorhub/core/logger"
	evententity "mentorhub/modules/event/entity"
	eventrepo "mentorhub/modules/event/repository"
	notifentity "mentorhub/modules/notification/entity"
	notifrepo "mentorhub/modules/notification/repository"
	notifservice "mentorhub/modules/notification/service"
	"mentorhub/modules/notification/tasks"

	"github.com/hibiken/asynq"
)

// Worker runs the background side of the system: notification delivery and
// the nightly archive sweep.
type Worker struct {
	server    *asynq.Server
	scheduler *asynq.Scheduler
	events    eventrepo.EventRepositoryInterface
	notifs    notifservice.NotificationServiceInterface
}

// NewClient builds the enqueue-side asynq client the API process uses.
func NewClient(cfg *config.Config) *asynq.Client {
	return asynq.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}

func New(cfg *config.Config, db database.Database) *Worker {
	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}

	server := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: cfg.Worker.Concurrency,
		Logger:      asynqLogger{},
	})
	scheduler := asynq.NewScheduler(redisOpt, &asynq.SchedulerOpts{
		Logger: asynqLogger{},
	})

	return &Worker{
		server:    server,
		scheduler: scheduler,
		events:    eventrepo.NewEventRepository(&db),
		notifs:    notifservice.NewNotificationService(notifrepo.NewNotificationRepository(&db)),
	}
}

// Start registers handlers and the cron entries, then serves until Stop.
func (w *Worker) Start(cfg *config.Config) error {
	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeDeliver, w.handleDeliver)
	mux.HandleFunc(tasks.TypeArchiveSweep, w.handleArchiveSweep)

	if _, err := w.scheduler.Register(cfg.Worker.ArchiveSchedule, asynq.NewTask(tasks.TypeArchiveSweep, nil)); err != nil {
		return fmt.Errorf("failed to register archive sweep: %w", err)
	}
	if err := w.scheduler.Start(); err != nil {
		return fmt.Errorf("failed to start scheduler: %w", err)
	}

	return w.server.Start(mux)
}

func (w *Worker) Stop() {
	w.scheduler.Shutdown()
	w.server.Shutdown()
}

// deliverContent composes the notification for a mentor request. The event
// may be gone by delivery time, so the company is only named when known.
func deliverContent(kind evententity.MentorLinkKind, company string) (notifType, title, message string) {
	notifType = notifentity.TypeMentorRequest
	title = "New mentoring request"
	message = "A mentor has requested to join your event"
	if kind == evententity.LinkKindBackup {
		notifType = notifentity.TypeBackupRequest
		title = "New backup request"
		message = "A mentor has offered to be backup for your event"
	}
	if company != "" {
		message = fmt.Sprintf("%s at %s", message, company)
	}
	return notifType, title, message
}

// handleDeliver persists a request notification for the coach. The mentor
// and event are named in the payload; the message names the company so the
// coach knows which event without opening it.
func (w *Worker) handleDeliver(ctx context.Context, t *asynq.Task) error {
	var p tasks.DeliverPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("invalid deliver payload: %w", err)
	}

	ev, err := w.events.GetByID(ctx, p.EventID)
	if err != nil {
		return err
	}
	company := ""
	if ev != nil {
		company = ev.Company
	}
	notifType, title, message := deliverContent(p.Kind, company)

	err = w.notifs.Create(ctx, &notifentity.Notification{
		UserID:  p.CoachID,
		Title:   title,
		Message: message,
		Type:    notifType,
		Data: notifentity.JSONB{
			"event_id":  p.EventID.String(),
			"mentor_id": p.MentorID.String(),
			"kind":      string(p.Kind),
		},
	})
	if err != nil {
		return err
	}
	logger.Info("Worker:Deliver:Success", "coach_id", p.CoachID, "event_id", p.EventID, "type", notifType)
	return nil
}

// handleArchiveSweep archives every event dated strictly before today.
func (w *Worker) handleArchiveSweep(ctx context.Context, t *asynq.Task) error {
	today := time.Now().UTC().Truncate(24 * time.Hour)
	archived, err := w.events.ArchivePastEvents(ctx, today)
	if err != nil {
		logger.Error("Worker:ArchiveSweep:Error", "error", err)
		return err
	}
	logger.Info("Worker:ArchiveSweep:Success", "archived", archived)
	return nil
}

// asynqLogger adapts asynq's logging onto the application logger.
type asynqLogger struct{}

func (asynqLogger) Debug(args ...interface{}) { logger.Debug(fmt.Sprint(args...)) }
func (asynqLogger) Info(args ...interface{})  { logger.Info(fmt.Sprint(args...)) }
func (asynqLogger) Warn(args ...interface{})  { logger.Warn(fmt.Sprint(args...)) }
func (asynqLogger) Error(args ...interface{}) { logger.Error(fmt.Sprint(args...)) }
func (asynqLogger) Fatal(args ...interface{}) { logger.Error(fmt.Sprint(args...)) }
