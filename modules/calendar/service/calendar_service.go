package service

import (
	"context"
	"sort"
	"time"

	"mentorhub/core/errors"
	"mentorhub/core/logger"
	"mentorhub/modules/calendar/dto"
	eventdto "mentorhub/modules/event/dto"
	evententity "mentorhub/modules/event/entity"
	eventrepo "mentorhub/modules/event/repository"
	eventservice "mentorhub/modules/event/service"
	statusentity "mentorhub/modules/status/entity"

	"github.com/google/uuid"
)

type CalendarServiceInterface interface {
	Month(ctx context.Context, month string) (*dto.MonthResponse, *errors.AppError)
	Day(ctx context.Context, date string, tzOffsetMinutes int) (*dto.DayResponse, *errors.AppError)
}

type CalendarService struct {
	events   eventrepo.EventRepositoryInterface
	resolver *eventservice.CoachNameResolver
}

func NewCalendarService(events eventrepo.EventRepositoryInterface, resolver *eventservice.CoachNameResolver) *CalendarService {
	return &CalendarService{events: events, resolver: resolver}
}

// Month projects one month of events into per-day summaries with
// zero-filled status counts.
func (s *CalendarService) Month(ctx context.Context, month string) (*dto.MonthResponse, *errors.AppError) {
	logger.Info("CalendarService:Month:Start", "month", month)

	from, err := time.Parse("2006-01", month)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Month must be YYYY-MM", err)
	}
	to := from.AddDate(0, 1, 0)

	events, err := s.events.ListByDateRange(ctx, from, to)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to load calendar events", err)
	}

	grouped := GroupByDate(events)
	days := make([]dto.DaySummary, 0, len(grouped))
	for day := range grouped {
		days = append(days, dto.DaySummary{
			Date:       day,
			EventCount: len(grouped[day]),
			Counts:     StatusCountsForDate(events, day),
		})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })

	return &dto.MonthResponse{Month: month, Days: days}, nil
}

// Day lists the full events of one calendar day as the viewer sees it.
// tzOffsetMinutes is the viewer's offset east of UTC; a timestamp
// selection shortly before or after midnight resolves to the day the
// viewer sees at that instant, not the server's.
func (s *CalendarService) Day(ctx context.Context, date string, tzOffsetMinutes int) (*dto.DayResponse, *errors.AppError) {
	zone := time.FixedZone("viewer", tzOffsetMinutes*60)

	selected, ok := ParseDaySelection(date, zone)
	if !ok {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Date must be YYYY-MM-DD", nil)
	}
	day := selected.In(zone).Format(dayFormat)

	// One day of padding on each side covers any offset's midnight skew.
	events, err := s.events.ListByDateRange(ctx, selected.AddDate(0, 0, -1).UTC(), selected.AddDate(0, 0, 2).UTC())
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to load calendar events", err)
	}

	matched := EventsMatchingCalendarDay(events, selected, zone)
	responses, appErr := s.decorate(ctx, matched)
	if appErr != nil {
		return nil, appErr
	}

	counts := make(map[string]int, len(statusentity.All()))
	for _, st := range statusentity.All() {
		counts[string(st)] = 0
	}
	for _, ev := range matched {
		counts[string(ev.Status)]++
	}

	return &dto.DayResponse{Date: day, Events: responses, Counts: counts}, nil
}

func (s *CalendarService) decorate(ctx context.Context, events []evententity.Event) ([]eventdto.EventResponse, *errors.AppError) {
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

	linksByEvent, err := s.events.GetMentorLinksForEvents(ctx, ids)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to load mentor requests", err)
	}
	names := s.resolver.Resolve(ctx, coachIDs)

	responses := make([]eventdto.EventResponse, 0, len(events))
	for i := range events {
		ev := &events[i]
		responses = append(responses, eventdto.NewEventResponse(ev, names[ev.CoachID], evententity.GroupLinks(linksByEvent[ev.ID])))
	}
	return responses, nil
}
