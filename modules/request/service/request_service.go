package service

import (
	"context"
	stderrors "errors"

	"mentorhub/core/cache"
	"mentorhub/core/constants"
	"mentorhub/core/errors"
	"mentorhub/core/logger"
	"mentorhub/core/utils"
	authentity "mentorhub/modules/auth/entity"
	eventdto "mentorhub/modules/event/dto"
	evententity "mentorhub/modules/event/entity"
	eventrepo "mentorhub/modules/event/repository"
	"mentorhub/modules/request/dto"
	"mentorhub/modules/request/entity"
	"mentorhub/modules/request/repository"
	statusentity "mentorhub/modules/status/entity"

	"github.com/google/uuid"
)

// Notifier delivers a "new mentor request" notification to the coach.
// Delivery is best effort; a failure never rolls back the request.
type Notifier interface {
	NotifyMentorRequest(ctx context.Context, coachID, eventID, mentorID uuid.UUID, kind evententity.MentorLinkKind) error
}

type RequestServiceInterface interface {
	PrepareConfirmation(ctx context.Context, userID uuid.UUID, role authentity.Role, eventID uuid.UUID, req *dto.PrepareConfirmationRequest) (*dto.ConfirmationResponse, *errors.AppError)
	Submit(ctx context.Context, userID uuid.UUID, req *dto.SubmitRequest) (*eventdto.EventMutableResponse, *errors.AppError)
	Capabilities(ctx context.Context, userID uuid.UUID, role authentity.Role, eventID uuid.UUID) (*dto.CapabilitiesResponse, *errors.AppError)
	AcceptPrimary(ctx context.Context, coachID uuid.UUID, eventID uuid.UUID, req *dto.CoachTransitionRequest) (*eventdto.EventMutableResponse, *errors.AppError)
	SeekBackup(ctx context.Context, coachID uuid.UUID, eventID uuid.UUID) (*eventdto.EventMutableResponse, *errors.AppError)
	Close(ctx context.Context, coachID uuid.UUID, eventID uuid.UUID) (*eventdto.EventMutableResponse, *errors.AppError)
}

type RequestService struct {
	events   eventrepo.EventRepositoryInterface
	requests repository.RequestRepositoryInterface
	cache    cache.Cache
	notifier Notifier
}

func NewRequestService(events eventrepo.EventRepositoryInterface, requests repository.RequestRepositoryInterface, c cache.Cache, notifier Notifier) *RequestService {
	return &RequestService{events: events, requests: requests, cache: c, notifier: notifier}
}

func parseKind(raw string) (evententity.MentorLinkKind, bool) {
	switch evententity.MentorLinkKind(raw) {
	case evententity.LinkKindPrimary:
		return evententity.LinkKindPrimary, true
	case evententity.LinkKindBackup:
		return evententity.LinkKindBackup, true
	}
	return "", false
}

// PrepareConfirmation is phase one of a mentor request: it validates the
// caller's capability against current event state and hands out a one-shot
// token plus the localized dialog copy. Nothing is written to the event.
func (s *RequestService) PrepareConfirmation(ctx context.Context, userID uuid.UUID, role authentity.Role, eventID uuid.UUID, req *dto.PrepareConfirmationRequest) (*dto.ConfirmationResponse, *errors.AppError) {
	logger.Info("RequestService:PrepareConfirmation:Start", "user_id", userID, "event_id", eventID, "kind", req.Kind)

	kind, ok := parseKind(req.Kind)
	if !ok {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Kind must be primary or backup", nil)
	}

	ev, links, appErr := s.loadEvent(ctx, eventID)
	if appErr != nil {
		return nil, appErr
	}

	caps := CapabilitiesFor(role, userID, ev, links)
	if kind == evententity.LinkKindPrimary && !caps.CanRequestPrimary {
		return nil, s.rejectRequest(req.Locale, kind, links, userID)
	}
	if kind == evententity.LinkKindBackup && !caps.CanRequestBackup {
		return nil, s.rejectRequest(req.Locale, kind, links, userID)
	}

	conf := &entity.Confirmation{
		Token:    utils.GenerateConfirmationToken(),
		EventID:  eventID,
		MentorID: userID,
		Kind:     kind,
		Locale:   req.Locale,
	}
	payload, err := conf.Encode()
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to prepare confirmation", err)
	}
	if err := s.cache.SetConfirmation(ctx, conf.Token, payload); err != nil {
		logger.Error("RequestService:PrepareConfirmation:Cache:Error", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to prepare confirmation", err)
	}

	logger.Info("RequestService:PrepareConfirmation:Success", "event_id", eventID, "kind", kind)
	return &dto.ConfirmationResponse{
		Token:            conf.Token,
		ExpiresInSeconds: int(constants.ConfirmationTTL.Seconds()),
		EventID:          eventID,
		Company:          ev.Company,
		Date:             ev.DateKey(),
		StartTime:        ev.StartTime,
		Kind:             string(kind),
		Copy:             confirmationCopy(req.Locale, kind, ev.Company),
	}, nil
}

// rejectRequest picks the localized reason a request capability is denied.
func (s *RequestService) rejectRequest(locale string, kind evententity.MentorLinkKind, links []evententity.MentorLink, userID uuid.UUID) *errors.AppError {
	if evententity.Has(links, userID, kind) {
		return errors.NewAppError(errors.ErrAlreadyExists, localized(locale, msgAlreadyRequested), nil)
	}
	if kind == evententity.LinkKindBackup {
		return errors.NewAppError(errors.ErrConflict, localized(locale, msgNoBackup), nil)
	}
	return errors.NewAppError(errors.ErrConflict, localized(locale, msgNotOpen), nil)
}

// Submit is phase two: it spends the token and applies the request against
// the event's CURRENT state. The client's view may be stale, so every rule
// is re-checked here; the response carries only the mutable fields the
// client merges back.
func (s *RequestService) Submit(ctx context.Context, userID uuid.UUID, req *dto.SubmitRequest) (*eventdto.EventMutableResponse, *errors.AppError) {
	logger.Info("RequestService:Submit:Start", "user_id", userID)

	payload, found, err := s.cache.TakeConfirmation(ctx, req.Token)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, localized(req.Locale, msgGeneric), err)
	}
	if !found {
		// Either already spent or expired. Both mean this submit must not
		// change anything.
		return nil, errors.NewAppError(errors.ErrConflict, localized(req.Locale, msgTokenSpent), nil)
	}

	conf, err := entity.DecodeConfirmation(payload)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, localized(req.Locale, msgGeneric), err)
	}
	if conf.MentorID != userID {
		return nil, errors.NewAppError(errors.ErrForbidden, localized(req.Locale, msgGeneric), nil)
	}
	locale := conf.Locale
	if req.Locale != "" {
		locale = req.Locale
	}

	ev, links, appErr := s.loadEvent(ctx, conf.EventID)
	if appErr != nil {
		return nil, appErr
	}

	if evententity.Has(links, userID, conf.Kind) {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, localized(locale, msgAlreadyRequested), nil)
	}
	switch conf.Kind {
	case evententity.LinkKindPrimary:
		if !CanRequestPrimary(ev.Status) {
			return nil, errors.NewAppError(errors.ErrConflict, localized(locale, msgNotOpen), nil)
		}
	case evententity.LinkKindBackup:
		if !CanRequestBackup(ev.Status) {
			return nil, errors.NewAppError(errors.ErrConflict, localized(locale, msgNoBackup), nil)
		}
	}

	// The first primary request moves an open event into progress. Backup
	// requests never change status.
	var newStatus *statusentity.EventStatus
	if conf.Kind == evententity.LinkKindPrimary && ev.Status == statusentity.StatusOpen {
		st := statusentity.StatusProgress
		newStatus = &st
	}

	if err := s.requests.InsertRequest(ctx, ev.ID, userID, conf.Kind, newStatus); err != nil {
		if stderrors.Is(err, repository.ErrDuplicateLink) {
			return nil, errors.NewAppError(errors.ErrAlreadyExists, localized(locale, msgAlreadyRequested), nil)
		}
		logger.Error("RequestService:Submit:Insert:Error", "error", err, "event_id", ev.ID)
		return nil, errors.NewAppError(errors.ErrCreateFailed, localized(locale, msgGeneric), err)
	}

	if s.notifier != nil {
		if err := s.notifier.NotifyMentorRequest(ctx, ev.CoachID, ev.ID, userID, conf.Kind); err != nil {
			logger.Error("RequestService:Submit:Notify:Error", "error", err, "event_id", ev.ID)
		}
	}

	logger.Info("RequestService:Submit:Success", "event_id", ev.ID, "kind", conf.Kind)
	return s.mutable(ctx, ev.ID)
}

func (s *RequestService) Capabilities(ctx context.Context, userID uuid.UUID, role authentity.Role, eventID uuid.UUID) (*dto.CapabilitiesResponse, *errors.AppError) {
	ev, links, appErr := s.loadEvent(ctx, eventID)
	if appErr != nil {
		return nil, appErr
	}
	return &dto.CapabilitiesResponse{
		EventID:      eventID,
		Capabilities: CapabilitiesFor(role, userID, ev, links),
	}, nil
}

// AcceptPrimary lets the owning coach accept a requested primary mentor.
// The event moves to found.
func (s *RequestService) AcceptPrimary(ctx context.Context, coachID uuid.UUID, eventID uuid.UUID, req *dto.CoachTransitionRequest) (*eventdto.EventMutableResponse, *errors.AppError) {
	logger.Info("RequestService:AcceptPrimary:Start", "coach_id", coachID, "event_id", eventID, "mentor_id", req.MentorID)

	ev, _, appErr := s.ownedEvent(ctx, coachID, eventID)
	if appErr != nil {
		return nil, appErr
	}
	if !CanRequestPrimary(ev.Status) {
		return nil, errors.NewAppError(errors.ErrConflict, "Event does not accept mentor decisions in its current status", nil)
	}

	if err := s.requests.AcceptPrimary(ctx, eventID, req.MentorID, statusentity.StatusFound); err != nil {
		if stderrors.Is(err, repository.ErrLinkNotFound) {
			return nil, errors.NewAppError(errors.ErrNotFound, "No pending request from this mentor", nil)
		}
		logger.Error("RequestService:AcceptPrimary:Error", "error", err, "event_id", eventID)
		return nil, errors.NewAppError(errors.ErrUpdateFailed, "Failed to accept mentor", err)
	}
	return s.mutable(ctx, eventID)
}

// SeekBackup reopens a staffed event for backup requests.
func (s *RequestService) SeekBackup(ctx context.Context, coachID uuid.UUID, eventID uuid.UUID) (*eventdto.EventMutableResponse, *errors.AppError) {
	return s.transition(ctx, coachID, eventID, statusentity.StatusSeekBackup,
		statusentity.StatusProgress, statusentity.StatusFound)
}

// Close finishes the workflow; no further requests are possible.
func (s *RequestService) Close(ctx context.Context, coachID uuid.UUID, eventID uuid.UUID) (*eventdto.EventMutableResponse, *errors.AppError) {
	return s.transition(ctx, coachID, eventID, statusentity.StatusClosed,
		statusentity.StatusOpen, statusentity.StatusProgress, statusentity.StatusSeekBackup, statusentity.StatusFound)
}

func (s *RequestService) transition(ctx context.Context, coachID uuid.UUID, eventID uuid.UUID, to statusentity.EventStatus, from ...statusentity.EventStatus) (*eventdto.EventMutableResponse, *errors.AppError) {
	ev, _, appErr := s.ownedEvent(ctx, coachID, eventID)
	if appErr != nil {
		return nil, appErr
	}

	allowed := false
	for _, st := range from {
		if ev.Status == st {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, errors.NewAppError(errors.ErrConflict, "Event cannot move to "+string(to)+" from "+string(ev.Status), nil)
	}

	if err := s.requests.UpdateStatus(ctx, eventID, to); err != nil {
		logger.Error("RequestService:Transition:Error", "error", err, "event_id", eventID, "to", to)
		return nil, errors.NewAppError(errors.ErrUpdateFailed, "Failed to update event status", err)
	}
	logger.Info("RequestService:Transition:Success", "event_id", eventID, "to", to)
	return s.mutable(ctx, eventID)
}

func (s *RequestService) loadEvent(ctx context.Context, eventID uuid.UUID) (*evententity.Event, []evententity.MentorLink, *errors.AppError) {
	ev, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, nil, errors.NewAppError(errors.ErrGetFailed, "Failed to load event", err)
	}
	if ev == nil {
		return nil, nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}
	links, err := s.events.GetMentorLinks(ctx, eventID)
	if err != nil {
		return nil, nil, errors.NewAppError(errors.ErrGetFailed, "Failed to load mentor requests", err)
	}
	return ev, links, nil
}

func (s *RequestService) ownedEvent(ctx context.Context, coachID, eventID uuid.UUID) (*evententity.Event, []evententity.MentorLink, *errors.AppError) {
	ev, links, appErr := s.loadEvent(ctx, eventID)
	if appErr != nil {
		return nil, nil, appErr
	}
	if ev.CoachID != coachID {
		return nil, nil, errors.NewAppError(errors.ErrForbidden, "Only the owning coach can manage this event", nil)
	}
	return ev, links, nil
}

func (s *RequestService) mutable(ctx context.Context, eventID uuid.UUID) (*eventdto.EventMutableResponse, *errors.AppError) {
	ev, links, appErr := s.loadEvent(ctx, eventID)
	if appErr != nil {
		return nil, appErr
	}
	resp := eventdto.NewEventMutableResponse(ev, evententity.GroupLinks(links))
	return &resp, nil
}
