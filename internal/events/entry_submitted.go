package events

import "time"

const EntrySubmittedTopic = "paylink.entry.submitted"

// EntrySubmittedEvent dipublish setelah sebuah entry berhasil dipersist,
// lewat transactional outbox supaya atomic dengan insert entry-nya.
type EntrySubmittedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id"`
	EntryID    string    `json:"entry_id"`
	LinkID     string    `json:"link_id"`
	EmployeeID string    `json:"employee_id"`
	UpiID      string    `json:"upi_id"`
	Amount     float64   `json:"amount"`
	OccurredAt time.Time `json:"occurred_at"`
}
