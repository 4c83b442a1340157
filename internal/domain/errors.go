package domain

import "fmt"

// ValidationKind identifies why a transition was rejected.
type ValidationKind string

const (
	// OutOfRange means a bet or trick count is outside [0, handSize].
	OutOfRange ValidationKind = "out_of_range"
	// ForbiddenBetSum means the bids total exactly the hand size, which the
	// house rule forbids.
	ForbiddenBetSum ValidationKind = "forbidden_bet_sum"
	// TrickOverLimit means a single player's tricks exceed the hand size.
	TrickOverLimit ValidationKind = "trick_over_limit"
	// TrickSumOverLimit means the table collectively took more tricks than
	// cards were dealt.
	TrickSumOverLimit ValidationKind = "trick_sum_over_limit"
	// IncompleteInput means a required entry is missing.
	IncompleteInput ValidationKind = "incomplete_input"
)

// ValidationError rejects a session transition. The session is left untouched
// when one is returned; the caller re-solicits corrected input.
type ValidationError struct {
	Kind ValidationKind
	Seat int // offending seat index, or -1 for table-wide violations
	Msg  string
}

func (e *ValidationError) Error() string {
	if e.Seat >= 0 {
		return fmt.Sprintf("%s (seat %d): %s", e.Kind, e.Seat, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func validationErr(kind ValidationKind, seat int, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Kind: kind, Seat: seat, Msg: fmt.Sprintf(format, args...)}
}
