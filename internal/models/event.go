package models

// MessageEvent is the payload published to Kafka on message lifecycle changes.
type MessageEvent struct {
	EventID   string `json:"event_id"`  // Unique event identifier
	Timestamp int64  `json:"timestamp"` // Unix timestamp of the event
	Operation string `json:"operation"` // "message_sent" or "message_read"
	MessageID int64  `json:"message_id"`
	From      string `json:"from_username"`
	To        string `json:"to_username"`
}
