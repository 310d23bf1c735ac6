// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dill

import "time"

// Deadline tells Send, Recv and Choose how long to wait for a rendezvous
// before giving up with ErrTimedOut. It is a small value type rather than
// a raw duration or timestamp, so callers can't confuse a zero value with
// "no deadline set."
type Deadline struct {
	at      time.Time
	never   bool
	hasTime bool
}

// Immediate never waits: a call with this deadline either completes
// against an already-waiting peer or fails with ErrTimedOut at once.
var Immediate = Deadline{}

// Never waits indefinitely, bounded only by ctx cancellation.
var Never = Deadline{never: true}

// At returns a deadline that expires at t.
func At(t time.Time) Deadline {
	return Deadline{at: t, hasTime: true}
}

// After returns a deadline that expires d from now.
func After(d time.Duration) Deadline {
	return At(time.Now().Add(d))
}

// immediate reports whether the deadline requires a result with no wait.
func (d Deadline) immediate() bool {
	return !d.never && !d.hasTime
}

// timer reports the remaining duration until expiry, and whether the
// deadline is bounded at all (false for Never).
func (d Deadline) timer() (time.Duration, bool) {
	if d.never {
		return 0, false
	}
	return time.Until(d.at), true
}
