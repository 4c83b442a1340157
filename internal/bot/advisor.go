// Package bot suggests bids for players who want a hint. It never sees a
// hand; advice is purely positional (hand size, bids already on the table,
// seats still to speak).
package bot

// SuggestBid recommends a legal, conservative bid for the next bidder.
// priorBets are the bids already locked in this round, playersAfter the
// number of seats still to bid after this one. The suggestion stays within
// [0, handSize] and, when the caller bids last, never completes the forbidden
// total where all bids sum to the hand size.
func SuggestBid(handSize int, priorBets []int, playersAfter int) int {
	players := len(priorBets) + playersAfter + 1
	bid := handSize / players // fair share, rounded down to stay modest

	taken := 0
	for _, b := range priorBets {
		taken += b
	}
	free := handSize - taken
	if free < 0 {
		free = 0
	}
	if bid > free {
		bid = free
	}

	// The last bidder may not bring the table total to the hand size.
	if playersAfter == 0 && taken+bid == handSize {
		if bid > 0 {
			bid--
		} else {
			bid++
		}
	}
	if bid > handSize {
		bid = handSize
	}
	return bid
}
