package service

import (
	"context"
	"fmt"
	"time"

	coreentity "mentorhub/core/entity"
	"mentorhub/core/errors"
	"mentorhub/core/logger"
	"mentorhub/core/params"
	"mentorhub/core/utils"
	"mentorhub/modules/event/dto"
	"mentorhub/modules/event/entity"
	"mentorhub/modules/event/repository"
	statusentity "mentorhub/modules/status/entity"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

type EventServiceInterface interface {
	ListEvents(ctx context.Context, query *dto.ListEventsQuery) (*coreentity.Pagination[dto.EventResponse], *errors.AppError)
	GetEvent(ctx context.Context, id uuid.UUID) (*dto.EventResponse, *errors.AppError)
	GetEventBySlug(ctx context.Context, s string) (*dto.EventResponse, *errors.AppError)
	GetMutable(ctx context.Context, id uuid.UUID) (*dto.EventMutableResponse, *errors.AppError)
	CreateEvent(ctx context.Context, coachID uuid.UUID, req *dto.CreateEventRequest) (*dto.EventResponse, *errors.AppError)
}

type EventService struct {
	repo     repository.EventRepositoryInterface
	resolver *CoachNameResolver
}

func NewEventService(repo repository.EventRepositoryInterface, resolver *CoachNameResolver) *EventService {
	return &EventService{repo: repo, resolver: resolver}
}

func (s *EventService) ListEvents(ctx context.Context, query *dto.ListEventsQuery) (*coreentity.Pagination[dto.EventResponse], *errors.AppError) {
	logger.Info("EventService:ListEvents:Start", "status", query.Status, "search", query.Search)

	filter := repository.ListFilter{Search: query.Search}
	if query.Status != "" {
		st, ok := statusentity.Parse(query.Status)
		if !ok {
			return nil, errors.NewAppError(errors.ErrInvalidInput, fmt.Sprintf("Unknown status %q", query.Status), nil)
		}
		filter.Status = &st
	}

	qp := params.QueryParams{
		PageNumber: query.Page,
		PageSize:   query.PageSize,
		SortBy:     query.SortBy,
		SortDesc:   query.SortDesc,
	}.Normalize()

	events, total, err := s.repo.List(ctx, filter, qp)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to load events", err)
	}

	responses, appErr := s.decorate(ctx, events)
	if appErr != nil {
		return nil, appErr
	}

	return &coreentity.Pagination[dto.EventResponse]{
		Items:      responses,
		TotalItems: total,
		PageNumber: qp.PageNumber,
		PageSize:   qp.PageSize,
	}, nil
}

// decorate attaches coach names and mentor sets to a page of events. Coach
// names go through the memoizing resolver; a failed lookup degrades to the
// Unknown sentinel instead of failing the list.
func (s *EventService) decorate(ctx context.Context, events []entity.Event) ([]dto.EventResponse, *errors.AppError) {
	ids := make([]uuid.UUID, 0, len(events))
	coachIDs := make([]uuid.UUID, 0, len(events))
	seen := make(map[uuid.UUID]struct{}, len(events))
	for _, ev := range events {
		ids = append(ids, ev.ID)
		if _, ok := seen[ev.CoachID]; !ok {
			seen[ev.CoachID] = struct{}{}
			coachIDs = append(coachIDs, ev.CoachID)
		}
	}

	linksByEvent, err := s.repo.GetMentorLinksForEvents(ctx, ids)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to load mentor requests", err)
	}

	names := s.resolver.Resolve(ctx, coachIDs)

	responses := make([]dto.EventResponse, 0, len(events))
	for i := range events {
		ev := &events[i]
		sets := entity.GroupLinks(linksByEvent[ev.ID])
		responses = append(responses, dto.NewEventResponse(ev, names[ev.CoachID], sets))
	}
	return responses, nil
}

func (s *EventService) GetEvent(ctx context.Context, id uuid.UUID) (*dto.EventResponse, *errors.AppError) {
	ev, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to load event", err)
	}
	if ev == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}
	return s.toResponse(ctx, ev)
}

func (s *EventService) GetEventBySlug(ctx context.Context, slugParam string) (*dto.EventResponse, *errors.AppError) {
	ev, err := s.repo.GetBySlug(ctx, slugParam)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to load event", err)
	}
	if ev == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}
	return s.toResponse(ctx, ev)
}

func (s *EventService) toResponse(ctx context.Context, ev *entity.Event) (*dto.EventResponse, *errors.AppError) {
	links, err := s.repo.GetMentorLinks(ctx, ev.ID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to load mentor requests", err)
	}
	names := s.resolver.Resolve(ctx, []uuid.UUID{ev.CoachID})
	resp := dto.NewEventResponse(ev, names[ev.CoachID], entity.GroupLinks(links))
	return &resp, nil
}

// GetMutable returns only the fields a client overwrites after a request
// call: status and mentor sets. This is the read side of the
// refetch-and-merge contract.
func (s *EventService) GetMutable(ctx context.Context, id uuid.UUID) (*dto.EventMutableResponse, *errors.AppError) {
	ev, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to load event", err)
	}
	if ev == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}
	links, err := s.repo.GetMentorLinks(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to load mentor requests", err)
	}
	resp := dto.NewEventMutableResponse(ev, entity.GroupLinks(links))
	return &resp, nil
}

func (s *EventService) CreateEvent(ctx context.Context, coachID uuid.UUID, req *dto.CreateEventRequest) (*dto.EventResponse, *errors.AppError) {
	logger.Info("EventService:CreateEvent:Start", "coach_id", coachID, "company", req.Company)

	if req.Company == "" || req.Date == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Company and date are required", nil)
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Date must be YYYY-MM-DD", err)
	}
	if req.StartTime != "" {
		if _, err := time.Parse("15:04", req.StartTime); err != nil {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Start time must be HH:MM", err)
		}
	}

	ev := &entity.Event{
		Slug:          fmt.Sprintf("%s-%s", slug.Make(req.Company), utils.GenerateID()),
		Title:         req.Title,
		Company:       req.Company,
		Date:          date,
		StartTime:     req.StartTime,
		Description:   req.Description,
		CoachID:       coachID,
		Status:        statusentity.StatusOpen,
		DisplayColumn: req.DisplayColumn,
	}
	if err := s.repo.Create(ctx, ev); err != nil {
		logger.Error("EventService:CreateEvent:Create:Error", "error", err)
		return nil, errors.NewAppError(errors.ErrCreateFailed, "Failed to create event", err)
	}

	logger.Info("EventService:CreateEvent:Success", "event_id", ev.ID, "slug", ev.Slug)
	return s.toResponse(ctx, ev)
}
