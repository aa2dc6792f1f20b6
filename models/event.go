package models

// EventRequest is one entry of a schedule request. Times are "HH:MM".
type EventRequest struct {
	Name  string `json:"name"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// EventResponse is an event in the sorted output, times rendered back to "HH:MM".
type EventResponse struct {
	Name  string `json:"name"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// Conflict reports two sort-adjacent events that overlap, together with a
// replacement slot for the second one.
type Conflict struct {
	Event1         string `json:"event1"`
	Event2         string `json:"event2"`
	SuggestedStart string `json:"suggestedStart"`
	SuggestedEnd   string `json:"suggestedEnd"`
}

// ScheduleResponse is the result of scheduling one batch.
type ScheduleResponse struct {
	SortedEvents []EventResponse `json:"sortedEvents"`
	Conflicts    []Conflict      `json:"conflicts"`
}
