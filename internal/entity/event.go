package entity

type EventType string

const (
	EventBoardChanged   EventType = "board:changed"
	EventStatusChanged  EventType = "status:changed"
	EventLineFound      EventType = "line:found"
	EventMetricsChanged EventType = "metrics:changed"
)

// Event is an output signal for whoever renders the game.
type Event struct {
	Type    EventType      `json:"type"`
	Board   *Board         `json:"board,omitempty"`
	Status  Status         `json:"status,omitempty"`
	Line    *Line          `json:"line,omitempty"`
	Metrics *SearchMetrics `json:"metrics,omitempty"`
}

func BoardChanged(board Board) Event {
	return Event{Type: EventBoardChanged, Board: &board}
}

func StatusChanged(status Status) Event {
	return Event{Type: EventStatusChanged, Status: status}
}

func LineFound(line Line) Event {
	return Event{Type: EventLineFound, Line: &line}
}

func MetricsChanged(metrics SearchMetrics) Event {
	return Event{Type: EventMetricsChanged, Metrics: &metrics}
}
