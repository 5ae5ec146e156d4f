package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"mentorhub/core/database"
	"mentorhub/core/logger"
	"mentorhub/core/params"
	"mentorhub/modules/event/entity"
	statusentity "mentorhub/modules/status/entity"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ListFilter is the directory filter the repository understands.
type ListFilter struct {
	Status *statusentity.EventStatus
	Search string
}

// sortColumns whitelists the sortable fields. Keys are the API names,
// values the SQL expressions.
var sortColumns = map[string]string{
	"date":       "e.date",
	"start_time": "e.start_time",
	"company":    "e.company",
	"coach_name": "coach_name",
	"status":     "e.status",
	"created_at": "e.created_at",
}

// SortColumn resolves an API sort field, defaulting to date.
func SortColumn(field string) string {
	if col, ok := sortColumns[field]; ok {
		return col
	}
	return sortColumns["date"]
}

type EventRepositoryInterface interface {
	Create(ctx context.Context, ev *entity.Event) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Event, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Event, error)
	List(ctx context.Context, filter ListFilter, qp params.QueryParams) ([]entity.Event, int, error)
	ListByDateRange(ctx context.Context, from, to time.Time) ([]entity.Event, error)
	GetMentorLinks(ctx context.Context, eventID uuid.UUID) ([]entity.MentorLink, error)
	GetMentorLinksForEvents(ctx context.Context, eventIDs []uuid.UUID) (map[uuid.UUID][]entity.MentorLink, error)
	ArchivePastEvents(ctx context.Context, before time.Time) (int64, error)
}

type EventRepository struct {
	db database.IDatabase
}

func NewEventRepository(db database.IDatabase) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(ctx context.Context, ev *entity.Event) error {
	query := `
		INSERT INTO events (slug, title, company, date, start_time, description, coach_id, status, display_column, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`
	now := time.Now()
	ev.CreatedAt = now
	ev.UpdatedAt = now
	if ev.Status == "" {
		ev.Status = statusentity.StatusOpen
	}

	row := r.db.QueryRowContext(ctx, query,
		ev.Slug,
		ev.Title,
		ev.Company,
		ev.Date,
		ev.StartTime,
		ev.Description,
		ev.CoachID,
		ev.Status,
		ev.DisplayColumn,
		ev.CreatedAt,
		ev.UpdatedAt,
	)
	return row.Scan(&ev.ID)
}

func (r *EventRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	query := `SELECT * FROM events WHERE id = $1`
	var ev entity.Event
	err := r.db.GetContext(ctx, &ev, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.Error("EventRepository:GetByID:Error", "error", err)
		return nil, err
	}
	return &ev, nil
}

func (r *EventRepository) GetBySlug(ctx context.Context, slug string) (*entity.Event, error) {
	query := `SELECT * FROM events WHERE slug = $1`
	var ev entity.Event
	err := r.db.GetContext(ctx, &ev, query, slug)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.Error("EventRepository:GetBySlug:Error", "error", err)
		return nil, err
	}
	return &ev, nil
}

// List returns one page of the directory plus the unpaged match count.
// The coach join exists for searching and sorting by coach name; display
// names on responses still come from the profile resolver so the cache
// stays authoritative.
func (r *EventRepository) List(ctx context.Context, filter ListFilter, qp params.QueryParams) ([]entity.Event, int, error) {
	where := []string{"1=1"}
	args := []any{}

	if filter.Status != nil {
		args = append(args, *filter.Status)
		where = append(where, fmt.Sprintf("e.status = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		where = append(where, fmt.Sprintf(
			"(e.company ILIKE $%d OR (u.first_name || ' ' || u.last_name) ILIKE $%d OR to_char(e.date, 'YYYY-MM-DD') LIKE $%d)",
			n, n, n))
	}

	base := `FROM events e JOIN users u ON u.id = e.coach_id WHERE ` + strings.Join(where, " AND ")

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) "+base, args...); err != nil {
		logger.Error("EventRepository:List:Count:Error", "error", err)
		return nil, 0, err
	}

	dir := "ASC"
	if qp.SortDesc {
		dir = "DESC"
	}
	offset := (qp.PageNumber - 1) * qp.PageSize
	args = append(args, qp.PageSize, offset)

	// Secondary key keeps the order stable for ties on the sort column.
	query := fmt.Sprintf(
		`SELECT e.*, (u.first_name || ' ' || u.last_name) AS coach_name %s ORDER BY %s %s, e.id ASC LIMIT $%d OFFSET $%d`,
		base, SortColumn(qp.SortBy), dir, len(args)-1, len(args))

	var rows []eventWithCoachRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		logger.Error("EventRepository:List:Select:Error", "error", err)
		return nil, 0, err
	}

	events := make([]entity.Event, 0, len(rows))
	for _, row := range rows {
		events = append(events, row.Event)
	}
	return events, total, nil
}

type eventWithCoachRow struct {
	entity.Event
	CoachName string `db:"coach_name"`
}

func (r *EventRepository) ListByDateRange(ctx context.Context, from, to time.Time) ([]entity.Event, error) {
	query := `
		SELECT * FROM events
		WHERE date >= $1 AND date < $2
		ORDER BY date ASC, start_time ASC, id ASC
	`
	var events []entity.Event
	err := r.db.SelectContext(ctx, &events, query, from, to)
	if err != nil {
		logger.Error("EventRepository:ListByDateRange:Error", "error", err)
		return nil, err
	}
	return events, nil
}

func (r *EventRepository) GetMentorLinks(ctx context.Context, eventID uuid.UUID) ([]entity.MentorLink, error) {
	query := `
		SELECT event_id, mentor_id, kind, state, created_at
		FROM event_mentors
		WHERE event_id = $1
		ORDER BY created_at ASC
	`
	var links []entity.MentorLink
	err := r.db.SelectContext(ctx, &links, query, eventID)
	if err != nil {
		logger.Error("EventRepository:GetMentorLinks:Error", "error", err)
		return nil, err
	}
	return links, nil
}

func (r *EventRepository) GetMentorLinksForEvents(ctx context.Context, eventIDs []uuid.UUID) (map[uuid.UUID][]entity.MentorLink, error) {
	result := make(map[uuid.UUID][]entity.MentorLink, len(eventIDs))
	if len(eventIDs) == 0 {
		return result, nil
	}

	idStrings := make([]string, 0, len(eventIDs))
	for _, id := range eventIDs {
		idStrings = append(idStrings, id.String())
	}

	query := `
		SELECT event_id, mentor_id, kind, state, created_at
		FROM event_mentors
		WHERE event_id = ANY($1)
		ORDER BY created_at ASC
	`
	var links []entity.MentorLink
	err := r.db.SelectContext(ctx, &links, query, pq.Array(idStrings))
	if err != nil {
		logger.Error("EventRepository:GetMentorLinksForEvents:Error", "error", err)
		return nil, err
	}

	for _, l := range links {
		result[l.EventID] = append(result[l.EventID], l)
	}
	return result, nil
}

// ArchivePastEvents is the out-of-band administrative transition: every
// event dated strictly before the cutoff leaves the active workflow.
func (r *EventRepository) ArchivePastEvents(ctx context.Context, before time.Time) (int64, error) {
	query := `
		UPDATE events
		SET status = $1, updated_at = $2
		WHERE date < $3 AND status <> $1
	`
	result, err := r.db.SQLx().ExecContext(ctx, query, statusentity.StatusArchived, time.Now(), before)
	if err != nil {
		logger.Error("EventRepository:ArchivePastEvents:Error", "error", err)
		return 0, err
	}
	return result.RowsAffected()
}
