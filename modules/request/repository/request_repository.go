package repository

import (
	"context"
	"errors"

	"mentorhub/core/database"
	"mentorhub/core/logger"
	evententity "mentorhub/modules/event/entity"
	statusentity "mentorhub/modules/status/entity"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ErrDuplicateLink is returned when a mentor already holds a link of the
// same kind on the event. The unique index on (event_id, mentor_id, kind)
// is the source of truth so concurrent submits cannot race past the
// service-level check.
var ErrDuplicateLink = errors.New("mentor link already exists")

// ErrLinkNotFound is returned by coach transitions that target a link that
// does not exist.
var ErrLinkNotFound = errors.New("mentor link not found")

type RequestRepositoryInterface interface {
	InsertRequest(ctx context.Context, eventID, mentorID uuid.UUID, kind evententity.MentorLinkKind, newStatus *statusentity.EventStatus) error
	AcceptPrimary(ctx context.Context, eventID, mentorID uuid.UUID, newStatus statusentity.EventStatus) error
	UpdateStatus(ctx context.Context, eventID uuid.UUID, status statusentity.EventStatus) error
}

type RequestRepository struct {
	db database.IDatabase
}

func NewRequestRepository(db database.IDatabase) *RequestRepository {
	return &RequestRepository{db: db}
}

// InsertRequest records a mentor request and, when newStatus is set,
// advances the event status in the same transaction.
func (r *RequestRepository) InsertRequest(ctx context.Context, eventID, mentorID uuid.UUID, kind evententity.MentorLinkKind, newStatus *statusentity.EventStatus) error {
	tx, err := r.db.SQLx().BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO event_mentors (event_id, mentor_id, kind, state, created_at)
		VALUES ($1, $2, $3, $4, NOW())`,
		eventID, mentorID, kind, evententity.LinkStateRequested)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return ErrDuplicateLink
		}
		return err
	}

	if newStatus != nil {
		if _, err := tx.ExecContext(ctx,
			`UPDATE events SET status = $1, updated_at = NOW() WHERE id = $2`,
			*newStatus, eventID); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	logger.Info("RequestRepository:InsertRequest:Success", "event_id", eventID, "mentor_id", mentorID, "kind", kind)
	return nil
}

// AcceptPrimary flips a requested primary link to accepted and moves the
// event to the given status, both in one transaction.
func (r *RequestRepository) AcceptPrimary(ctx context.Context, eventID, mentorID uuid.UUID, newStatus statusentity.EventStatus) error {
	tx, err := r.db.SQLx().BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE event_mentors SET state = $1
		WHERE event_id = $2 AND mentor_id = $3 AND kind = $4`,
		evententity.LinkStateAccepted, eventID, mentorID, evententity.LinkKindPrimary)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrLinkNotFound
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE events SET status = $1, updated_at = NOW() WHERE id = $2`,
		newStatus, eventID); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *RequestRepository) UpdateStatus(ctx context.Context, eventID uuid.UUID, status statusentity.EventStatus) error {
	return r.db.ExecContext(ctx,
		`UPDATE events SET status = $1, updated_at = NOW() WHERE id = $2`,
		status, eventID)
}
