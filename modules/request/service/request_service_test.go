package service

import (
	"context"
	"errors"
	"testing"
	"time"

	coreerrors "mentorhub/core/errors"
	"mentorhub/core/params"
	authentity "mentorhub/modules/auth/entity"
	evententity "mentorhub/modules/event/entity"
	eventrepo "mentorhub/modules/event/repository"
	"mentorhub/modules/request/dto"
	"mentorhub/modules/request/repository"
	statusentity "mentorhub/modules/status/entity"

	"github.com/google/uuid"
)

// fakeEventRepo serves a single event and its links from memory.
type fakeEventRepo struct {
	event *evententity.Event
	links []evententity.MentorLink
}

func (f *fakeEventRepo) Create(ctx context.Context, ev *evententity.Event) error { return nil }
func (f *fakeEventRepo) GetByID(ctx context.Context, id uuid.UUID) (*evententity.Event, error) {
	if f.event != nil && f.event.ID == id {
		ev := *f.event
		return &ev, nil
	}
	return nil, nil
}
func (f *fakeEventRepo) GetBySlug(ctx context.Context, slug string) (*evententity.Event, error) {
	return nil, nil
}
func (f *fakeEventRepo) List(ctx context.Context, filter eventrepo.ListFilter, qp params.QueryParams) ([]evententity.Event, int, error) {
	return nil, 0, nil
}
func (f *fakeEventRepo) ListByDateRange(ctx context.Context, from, to time.Time) ([]evententity.Event, error) {
	return nil, nil
}
func (f *fakeEventRepo) GetMentorLinks(ctx context.Context, eventID uuid.UUID) ([]evententity.MentorLink, error) {
	return f.links, nil
}
func (f *fakeEventRepo) GetMentorLinksForEvents(ctx context.Context, eventIDs []uuid.UUID) (map[uuid.UUID][]evententity.MentorLink, error) {
	return map[uuid.UUID][]evententity.MentorLink{}, nil
}
func (f *fakeEventRepo) ArchivePastEvents(ctx context.Context, before time.Time) (int64, error) {
	return 0, nil
}

// fakeRequestRepo records writes and mirrors them into the event repo so
// the refetched mutable payload reflects the transition.
type fakeRequestRepo struct {
	events     *fakeEventRepo
	inserts    int
	insertErr  error
	lastKind   evententity.MentorLinkKind
	lastStatus *statusentity.EventStatus
}

func (f *fakeRequestRepo) InsertRequest(ctx context.Context, eventID, mentorID uuid.UUID, kind evententity.MentorLinkKind, newStatus *statusentity.EventStatus) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.inserts++
	f.lastKind = kind
	f.lastStatus = newStatus
	f.events.links = append(f.events.links, evententity.MentorLink{
		EventID: eventID, MentorID: mentorID, Kind: kind, State: evententity.LinkStateRequested,
	})
	if newStatus != nil {
		f.events.event.Status = *newStatus
	}
	return nil
}

func (f *fakeRequestRepo) AcceptPrimary(ctx context.Context, eventID, mentorID uuid.UUID, newStatus statusentity.EventStatus) error {
	for i := range f.events.links {
		l := &f.events.links[i]
		if l.MentorID == mentorID && l.Kind == evententity.LinkKindPrimary {
			l.State = evententity.LinkStateAccepted
			f.events.event.Status = newStatus
			return nil
		}
	}
	return repository.ErrLinkNotFound
}

func (f *fakeRequestRepo) UpdateStatus(ctx context.Context, eventID uuid.UUID, status statusentity.EventStatus) error {
	f.events.event.Status = status
	return nil
}

// fakeConfirmations is an in-memory one-shot token store.
type fakeConfirmations struct {
	tokens map[string]string
}

func (f *fakeConfirmations) Get(ctx context.Context, key string) (string, error)     { return "", nil }
func (f *fakeConfirmations) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return nil
}
func (f *fakeConfirmations) Del(ctx context.Context, key string) error                  { return nil }
func (f *fakeConfirmations) Expire(ctx context.Context, key string, ttl time.Duration) error {
	return nil
}
func (f *fakeConfirmations) AddToTokenBlacklist(ctx context.Context, token string, ttl time.Duration) error {
	return nil
}
func (f *fakeConfirmations) IsTokenBlacklisted(ctx context.Context, token string) (bool, error) {
	return false, nil
}
func (f *fakeConfirmations) IncrementLoginAttempt(ctx context.Context, identifier string) (int64, error) {
	return 0, nil
}
func (f *fakeConfirmations) IsLoginBlocked(ctx context.Context, identifier string) (bool, error) {
	return false, nil
}
func (f *fakeConfirmations) SetConfirmation(ctx context.Context, token, payload string) error {
	if f.tokens == nil {
		f.tokens = make(map[string]string)
	}
	f.tokens[token] = payload
	return nil
}
func (f *fakeConfirmations) TakeConfirmation(ctx context.Context, token string) (string, bool, error) {
	payload, ok := f.tokens[token]
	if !ok {
		return "", false, nil
	}
	delete(f.tokens, token)
	return payload, true, nil
}

type fakeNotifier struct {
	calls int
	err   error
}

func (f *fakeNotifier) NotifyMentorRequest(ctx context.Context, coachID, eventID, mentorID uuid.UUID, kind evententity.MentorLinkKind) error {
	f.calls++
	return f.err
}

func newFixture(status statusentity.EventStatus) (*RequestService, *fakeEventRepo, *fakeRequestRepo, *fakeConfirmations, *fakeNotifier) {
	ev := &evententity.Event{
		Company: "Acme GmbH",
		Status:  status,
	}
	ev.ID = uuid.New()
	ev.CoachID = uuid.New()
	ev.Date = time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

	events := &fakeEventRepo{event: ev}
	requests := &fakeRequestRepo{events: events}
	confirmations := &fakeConfirmations{}
	notifier := &fakeNotifier{}
	svc := NewRequestService(events, requests, confirmations, notifier)
	return svc, events, requests, confirmations, notifier
}

func prepare(t *testing.T, svc *RequestService, events *fakeEventRepo, mentorID uuid.UUID, kind string) *dto.ConfirmationResponse {
	t.Helper()
	resp, appErr := svc.PrepareConfirmation(context.Background(), mentorID, authentity.RoleMentor, events.event.ID,
		&dto.PrepareConfirmationRequest{Kind: kind, Locale: "en"})
	if appErr != nil {
		t.Fatalf("PrepareConfirmation failed: %v", appErr)
	}
	return resp
}

func TestSubmit_FirstPrimaryRequestMovesOpenToProgress(t *testing.T) {
	svc, events, requests, _, notifier := newFixture(statusentity.StatusOpen)
	mentorID := uuid.New()

	conf := prepare(t, svc, events, mentorID, "primary")
	result, appErr := svc.Submit(context.Background(), mentorID, &dto.SubmitRequest{Token: conf.Token, Locale: "en"})
	if appErr != nil {
		t.Fatalf("Submit failed: %v", appErr)
	}

	if requests.inserts != 1 {
		t.Fatalf("expected exactly one insert, got %d", requests.inserts)
	}
	if requests.lastStatus == nil || *requests.lastStatus != statusentity.StatusProgress {
		t.Errorf("expected status advance to progress, got %v", requests.lastStatus)
	}
	if result.Status != string(statusentity.StatusProgress) {
		t.Errorf("mutable payload status = %q, want progress", result.Status)
	}
	if len(result.Mentors.RequestingMentors) != 1 || result.Mentors.RequestingMentors[0] != mentorID {
		t.Errorf("mutable payload should list the requesting mentor, got %+v", result.Mentors)
	}
	if notifier.calls != 1 {
		t.Errorf("expected one coach notification, got %d", notifier.calls)
	}
}

func TestSubmit_BackupRequestLeavesStatus(t *testing.T) {
	svc, events, requests, _, _ := newFixture(statusentity.StatusSeekBackup)
	mentorID := uuid.New()

	conf := prepare(t, svc, events, mentorID, "backup")
	result, appErr := svc.Submit(context.Background(), mentorID, &dto.SubmitRequest{Token: conf.Token, Locale: "en"})
	if appErr != nil {
		t.Fatalf("Submit failed: %v", appErr)
	}

	if requests.inserts != 1 {
		t.Fatalf("expected exactly one insert, got %d", requests.inserts)
	}
	if requests.lastStatus != nil {
		t.Errorf("backup request must not change status, got %v", *requests.lastStatus)
	}
	if result.Status != string(statusentity.StatusSeekBackup) {
		t.Errorf("status = %q, want seekbackup", result.Status)
	}
	if len(result.Mentors.BackupRequests) != 1 {
		t.Errorf("expected one backup request in payload, got %+v", result.Mentors)
	}
}

func TestSubmit_TokenIsSingleUse(t *testing.T) {
	svc, events, requests, _, _ := newFixture(statusentity.StatusOpen)
	mentorID := uuid.New()

	conf := prepare(t, svc, events, mentorID, "primary")
	if _, appErr := svc.Submit(context.Background(), mentorID, &dto.SubmitRequest{Token: conf.Token, Locale: "en"}); appErr != nil {
		t.Fatalf("first Submit failed: %v", appErr)
	}

	_, appErr := svc.Submit(context.Background(), mentorID, &dto.SubmitRequest{Token: conf.Token, Locale: "en"})
	if appErr == nil {
		t.Fatal("second Submit with the same token must fail")
	}
	if appErr.Code != coreerrors.ErrConflict {
		t.Errorf("second Submit code = %q, want %q", appErr.Code, coreerrors.ErrConflict)
	}
	if requests.inserts != 1 {
		t.Errorf("second Submit must not write, inserts = %d", requests.inserts)
	}
}

func TestSubmit_ExpiredTokenChangesNothing(t *testing.T) {
	svc, _, requests, _, notifier := newFixture(statusentity.StatusOpen)
	mentorID := uuid.New()

	_, appErr := svc.Submit(context.Background(), mentorID, &dto.SubmitRequest{Token: "gone", Locale: "de"})
	if appErr == nil {
		t.Fatal("Submit with an unknown token must fail")
	}
	if appErr.Code != coreerrors.ErrConflict {
		t.Errorf("code = %q, want %q", appErr.Code, coreerrors.ErrConflict)
	}
	if requests.inserts != 0 || notifier.calls != 0 {
		t.Error("late submit must not write or notify")
	}
}

func TestSubmit_RevalidatesAgainstCurrentStatus(t *testing.T) {
	svc, events, requests, _, _ := newFixture(statusentity.StatusOpen)
	mentorID := uuid.New()

	conf := prepare(t, svc, events, mentorID, "primary")
	// The event closes between confirmation and submit.
	events.event.Status = statusentity.StatusClosed

	_, appErr := svc.Submit(context.Background(), mentorID, &dto.SubmitRequest{Token: conf.Token, Locale: "en"})
	if appErr == nil {
		t.Fatal("Submit against a closed event must fail")
	}
	if appErr.Code != coreerrors.ErrConflict {
		t.Errorf("code = %q, want %q", appErr.Code, coreerrors.ErrConflict)
	}
	if requests.inserts != 0 {
		t.Error("stale submit must not write")
	}
}

func TestSubmit_DuplicateLinkMapsToAlreadyExists(t *testing.T) {
	svc, events, requests, _, _ := newFixture(statusentity.StatusOpen)
	mentorID := uuid.New()

	conf := prepare(t, svc, events, mentorID, "primary")
	requests.insertErr = repository.ErrDuplicateLink

	_, appErr := svc.Submit(context.Background(), mentorID, &dto.SubmitRequest{Token: conf.Token, Locale: "en"})
	if appErr == nil || appErr.Code != coreerrors.ErrAlreadyExists {
		t.Fatalf("expected already-exists, got %v", appErr)
	}
}

func TestSubmit_InsertFailureIsRetryable(t *testing.T) {
	svc, events, requests, confirmations, _ := newFixture(statusentity.StatusOpen)
	mentorID := uuid.New()

	conf := prepare(t, svc, events, mentorID, "primary")
	requests.insertErr = errors.New("connection reset")

	_, appErr := svc.Submit(context.Background(), mentorID, &dto.SubmitRequest{Token: conf.Token, Locale: "en"})
	if appErr == nil || appErr.Code != coreerrors.ErrCreateFailed {
		t.Fatalf("expected create-failed, got %v", appErr)
	}
	if events.event.Status != statusentity.StatusOpen {
		t.Errorf("failed submit must leave status open, got %q", events.event.Status)
	}

	// A fresh confirmation goes through once the store recovers.
	requests.insertErr = nil
	conf = prepare(t, svc, events, mentorID, "primary")
	if _, appErr := svc.Submit(context.Background(), mentorID, &dto.SubmitRequest{Token: conf.Token, Locale: "en"}); appErr != nil {
		t.Fatalf("retry should succeed, got %v", appErr)
	}
	if len(confirmations.tokens) != 0 {
		t.Error("all confirmation tokens should be consumed")
	}
}

func TestSubmit_NotifierFailureDoesNotFailRequest(t *testing.T) {
	svc, events, _, _, notifier := newFixture(statusentity.StatusOpen)
	notifier.err = errors.New("queue down")
	mentorID := uuid.New()

	conf := prepare(t, svc, events, mentorID, "primary")
	if _, appErr := svc.Submit(context.Background(), mentorID, &dto.SubmitRequest{Token: conf.Token, Locale: "en"}); appErr != nil {
		t.Fatalf("Submit should succeed despite notifier failure, got %v", appErr)
	}
}

func TestPrepareConfirmation_LocalizedCopy(t *testing.T) {
	svc, events, _, _, _ := newFixture(statusentity.StatusSeekBackup)
	mentorID := uuid.New()

	resp, appErr := svc.PrepareConfirmation(context.Background(), mentorID, authentity.RoleMentor, events.event.ID,
		&dto.PrepareConfirmationRequest{Kind: "backup", Locale: "de"})
	if appErr != nil {
		t.Fatalf("PrepareConfirmation failed: %v", appErr)
	}
	if resp.Copy.Title != "Backup-Anfrage bestätigen" {
		t.Errorf("title = %q, want the German backup title", resp.Copy.Title)
	}
	if resp.Copy.CancelLabel != "Abbrechen" {
		t.Errorf("cancel label = %q, want Abbrechen", resp.Copy.CancelLabel)
	}
	if resp.Company != "Acme GmbH" || resp.Date != "2026-09-14" {
		t.Errorf("summary = %q %q, want company and date", resp.Company, resp.Date)
	}
}

func TestPrepareConfirmation_RejectsClosedEvent(t *testing.T) {
	svc, events, _, confirmations, _ := newFixture(statusentity.StatusClosed)
	mentorID := uuid.New()

	_, appErr := svc.PrepareConfirmation(context.Background(), mentorID, authentity.RoleMentor, events.event.ID,
		&dto.PrepareConfirmationRequest{Kind: "primary", Locale: "de"})
	if appErr == nil {
		t.Fatal("closed event must reject confirmation")
	}
	if appErr.Message != "Dieses Event nimmt keine Anfragen mehr an" {
		t.Errorf("message = %q, want the localized rejection", appErr.Message)
	}
	if len(confirmations.tokens) != 0 {
		t.Error("no token may be stored for a rejected confirmation")
	}
}

func TestCoachTransitions(t *testing.T) {
	t.Run("accept moves to found", func(t *testing.T) {
		svc, events, _, _, _ := newFixture(statusentity.StatusProgress)
		mentorID := uuid.New()
		events.links = []evententity.MentorLink{{
			EventID: events.event.ID, MentorID: mentorID,
			Kind: evententity.LinkKindPrimary, State: evententity.LinkStateRequested,
		}}

		result, appErr := svc.AcceptPrimary(context.Background(), events.event.CoachID, events.event.ID,
			&dto.CoachTransitionRequest{MentorID: mentorID})
		if appErr != nil {
			t.Fatalf("AcceptPrimary failed: %v", appErr)
		}
		if result.Status != string(statusentity.StatusFound) {
			t.Errorf("status = %q, want found", result.Status)
		}
		if len(result.Mentors.AcceptedMentors) != 1 {
			t.Errorf("expected one accepted mentor, got %+v", result.Mentors)
		}
	})

	t.Run("accept requires the owning coach", func(t *testing.T) {
		svc, events, _, _, _ := newFixture(statusentity.StatusProgress)
		_, appErr := svc.AcceptPrimary(context.Background(), uuid.New(), events.event.ID,
			&dto.CoachTransitionRequest{MentorID: uuid.New()})
		if appErr == nil || appErr.Code != coreerrors.ErrForbidden {
			t.Fatalf("expected forbidden, got %v", appErr)
		}
	})

	t.Run("seek backup from found", func(t *testing.T) {
		svc, events, _, _, _ := newFixture(statusentity.StatusFound)
		result, appErr := svc.SeekBackup(context.Background(), events.event.CoachID, events.event.ID)
		if appErr != nil {
			t.Fatalf("SeekBackup failed: %v", appErr)
		}
		if result.Status != string(statusentity.StatusSeekBackup) {
			t.Errorf("status = %q, want seekbackup", result.Status)
		}
	})

	t.Run("seek backup rejected from open", func(t *testing.T) {
		svc, events, _, _, _ := newFixture(statusentity.StatusOpen)
		_, appErr := svc.SeekBackup(context.Background(), events.event.CoachID, events.event.ID)
		if appErr == nil || appErr.Code != coreerrors.ErrConflict {
			t.Fatalf("expected conflict, got %v", appErr)
		}
	})

	t.Run("close from found", func(t *testing.T) {
		svc, events, _, _, _ := newFixture(statusentity.StatusFound)
		result, appErr := svc.Close(context.Background(), events.event.CoachID, events.event.ID)
		if appErr != nil {
			t.Fatalf("Close failed: %v", appErr)
		}
		if result.Status != string(statusentity.StatusClosed) {
			t.Errorf("status = %q, want closed", result.Status)
		}
	})

	t.Run("close rejected from archived", func(t *testing.T) {
		svc, events, _, _, _ := newFixture(statusentity.StatusArchived)
		_, appErr := svc.Close(context.Background(), events.event.CoachID, events.event.ID)
		if appErr == nil || appErr.Code != coreerrors.ErrConflict {
			t.Fatalf("expected conflict, got %v", appErr)
		}
	})
}
