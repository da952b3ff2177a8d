package model

import "time"

// SyncOutcome records the result of one type's sync attempt. Outcomes are
// appended in catalog order and never mutated afterwards.
type SyncOutcome struct {
	TypeID      string
	Label       string
	Icon        string
	Succeeded   bool
	Created     int
	Skipped     int
	APIRequests int
	Error       string // populated only when Succeeded is false
	Duration    time.Duration
}
