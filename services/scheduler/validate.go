package scheduler

import (
	"fmt"

	"eventscheduler/models"
)

// ValidateRange applies the strict checks: both clock values inside one day and
// start strictly before end.
func ValidateRange(req models.EventRequest) error {
	_, err := parseStrict(req)
	return err
}

// ScheduleStrict is Schedule with ValidateRange applied to every event. Each
// time is parsed once.
func ScheduleStrict(reqs []models.EventRequest) (*models.ScheduleResponse, error) {
	events := make([]Event, 0, len(reqs))
	for _, r := range reqs {
		ev, err := parseStrict(r)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return scheduleParsed(events), nil
}

func parseStrict(req models.EventRequest) (Event, error) {
	start, err := strictMinutes(req.Name, "start", req.Start)
	if err != nil {
		return Event{}, err
	}
	end, err := strictMinutes(req.Name, "end", req.End)
	if err != nil {
		return Event{}, err
	}
	if start >= end {
		return Event{}, &InvalidRangeError{Event: req.Name, Reason: fmt.Sprintf("start %s is not before end %s", req.Start, req.End)}
	}
	return Event{Name: req.Name, Start: start, End: end}, nil
}

// strictMinutes range-checks the hour and minute before combining them, since
// "09:60" and "10:00" are the same minute count.
func strictMinutes(event, field, value string) (int, error) {
	h, m, err := splitClock(value)
	if err != nil {
		return 0, annotate(err, event, field)
	}
	if h < 0 || h > 23 {
		return 0, &InvalidRangeError{Event: event, Reason: fmt.Sprintf("%s hour %d outside 0-23", field, h)}
	}
	if m < 0 || m > 59 {
		return 0, &InvalidRangeError{Event: event, Reason: fmt.Sprintf("%s minute %d outside 0-59", field, m)}
	}
	return h*60 + m, nil
}
