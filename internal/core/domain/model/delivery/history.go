package delivery

import "time"

// HistoryEntry records that a delivery entered Status at At.
type HistoryEntry struct {
	Status Status
	At     time.Time
}
