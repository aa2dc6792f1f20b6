// Package scheduler orders a batch of events by start time and reports overlaps
// between events that end up next to each other.
package scheduler

import (
	"errors"
	"sort"

	"eventscheduler/models"
)

// Event is an event with its times converted to minutes since midnight.
type Event struct {
	Name  string
	Start int
	End   int
}

// ParseEvent converts a request entry into minutes.
func ParseEvent(req models.EventRequest) (Event, error) {
	start, err := ToMinutes(req.Start)
	if err != nil {
		return Event{}, annotate(err, req.Name, "start")
	}
	end, err := ToMinutes(req.End)
	if err != nil {
		return Event{}, annotate(err, req.Name, "end")
	}
	return Event{Name: req.Name, Start: start, End: end}, nil
}

func annotate(err error, event, field string) error {
	var mte *MalformedTimeError
	if errors.As(err, &mte) {
		mte.Event = event
		mte.Field = field
	}
	return err
}

// ParseEvents converts the whole batch, failing on the first malformed time.
func ParseEvents(reqs []models.EventRequest) ([]Event, error) {
	events := make([]Event, 0, len(reqs))
	for _, r := range reqs {
		ev, err := ParseEvent(r)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, nil
}

// SortEvents orders events by start minute in place. Equal starts keep their
// input order.
func SortEvents(events []Event) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Start < events[j].Start
	})
}

// DetectConflicts compares each event with the one after it in sorted order.
// The suggested slot keeps the second event's duration and starts where the last
// event of the batch ends; it is not checked against any other event.
func DetectConflicts(sorted []Event) []models.Conflict {
	conflicts := []models.Conflict{}
	if len(sorted) < 2 {
		return conflicts
	}

	lastEnd := sorted[len(sorted)-1].End
	for i := 0; i < len(sorted)-1; i++ {
		current, next := sorted[i], sorted[i+1]
		if current.End <= next.Start {
			continue
		}
		duration := next.End - next.Start
		conflicts = append(conflicts, models.Conflict{
			Event1:         current.Name,
			Event2:         next.Name,
			SuggestedStart: ToTime(lastEnd),
			SuggestedEnd:   ToTime(lastEnd + duration),
		})
	}
	return conflicts
}

// Schedule parses, sorts and scans one batch. It has no side effects; any
// malformed time fails the whole batch.
func Schedule(reqs []models.EventRequest) (*models.ScheduleResponse, error) {
	events, err := ParseEvents(reqs)
	if err != nil {
		return nil, err
	}
	return scheduleParsed(events), nil
}

func scheduleParsed(events []Event) *models.ScheduleResponse {
	SortEvents(events)

	sorted := make([]models.EventResponse, 0, len(events))
	for _, e := range events {
		sorted = append(sorted, models.EventResponse{
			Name:  e.Name,
			Start: ToTime(e.Start),
			End:   ToTime(e.End),
		})
	}

	return &models.ScheduleResponse{
		SortedEvents: sorted,
		Conflicts:    DetectConflicts(events),
	}
}
