package entity

// BatchIssuedEvent is published once a batch finishes generating.
type BatchIssuedEvent struct {
	EventID string
	BatchID string
	Count   int
}
