// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"errors"
	"fmt"
	"time"
)

var errInvalidTimeWindow = errors.New("time window must start before it ends")

// TimeWindow is the period in which a transaction may be notarized. A nil
// [From] leaves the window unbounded in the past. [Until] is exclusive.
type TimeWindow struct {
	From  *time.Time `json:"from,omitempty"`
	Until time.Time  `json:"until"`
}

// NewTimeWindowUntil returns a window ending at [until].
func NewTimeWindowUntil(until time.Time) *TimeWindow {
	return &TimeWindow{Until: until}
}

// NewTimeWindowBetween returns the window [from, until).
func NewTimeWindowBetween(from, until time.Time) (*TimeWindow, error) {
	if !from.Before(until) {
		return nil, fmt.Errorf("%w: from %s, until %s", errInvalidTimeWindow, from, until)
	}
	return &TimeWindow{
		From:  &from,
		Until: until,
	}, nil
}

// Contains returns true if [t] is inside the window.
func (w *TimeWindow) Contains(t time.Time) bool {
	if w.From != nil && t.Before(*w.From) {
		return false
	}
	return t.Before(w.Until)
}

func (w *TimeWindow) String() string {
	if w.From == nil {
		return fmt.Sprintf("[*, %s)", w.Until.Format(time.RFC3339))
	}
	return fmt.Sprintf("[%s, %s)", w.From.Format(time.RFC3339), w.Until.Format(time.RFC3339))
}
