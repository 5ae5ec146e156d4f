package tasks

import (
	"context"
	"encoding/json"

	"mentorhub/core/logger"
	evententity "mentorhub/modules/event/entity"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// Task type names shared between the API process and the worker.
const (
	TypeDeliver      = "notification:deliver"
	TypeArchiveSweep = "event:archive_sweep"
)

// DeliverPayload describes one notification to persist for a coach.
type DeliverPayload struct {
	CoachID  uuid.UUID                  `json:"coach_id"`
	EventID  uuid.UUID                  `json:"event_id"`
	MentorID uuid.UUID                  `json:"mentor_id"`
	Kind     evententity.MentorLinkKind `json:"kind"`
}

func NewDeliverTask(p DeliverPayload) (*asynq.Task, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeDeliver, b), nil
}

// Enqueuer pushes notification work onto the queue. It satisfies the
// request workflow's Notifier so a slow insert never delays the request
// response.
type Enqueuer struct {
	client *asynq.Client
}

func NewEnqueuer(client *asynq.Client) *Enqueuer {
	return &Enqueuer{client: client}
}

func (e *Enqueuer) NotifyMentorRequest(ctx context.Context, coachID, eventID, mentorID uuid.UUID, kind evententity.MentorLinkKind) error {
	task, err := NewDeliverTask(DeliverPayload{
		CoachID:  coachID,
		EventID:  eventID,
		MentorID: mentorID,
		Kind:     kind,
	})
	if err != nil {
		return err
	}
	info, err := e.client.EnqueueContext(ctx, task, asynq.MaxRetry(5))
	if err != nil {
		return err
	}
	logger.Info("NotificationEnqueuer:Enqueued", "task_id", info.ID, "queue", info.Queue)
	return nil
}
