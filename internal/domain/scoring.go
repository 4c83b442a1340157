package domain

// Scoring rates. A bid equal to the whole hand ("slam bid") doubles both the
// reward and the penalty.
const (
	pointsPerBid      = 10
	slamPointsPerBid  = 20
	zeroBidReward     = 5
	zeroBidMissFactor = 10
)

// ScoreRound computes each player's point delta for one round. Inputs share
// the same seat indexing. Each player's score depends only on their own bet
// and tricks plus the shared hand size:
//
//   - bet == 0: +5 when no trick was taken, else -10 per trick taken.
//   - bet > 0 met exactly: +bet*10 (+bet*20 on a slam bid).
//   - bet > 0 missed: -|won-bet|*10 (-|won-bet|*20 on a slam bid).
func ScoreRound(bets, tricks []int, handSize int) []int {
	points := make([]int, len(bets))
	for i := range bets {
		points[i] = scoreSeat(bets[i], tricks[i], handSize)
	}
	return points
}

func scoreSeat(bet, won, handSize int) int {
	if bet == 0 {
		if won == 0 {
			return zeroBidReward
		}
		return -won * zeroBidMissFactor
	}

	rate := pointsPerBid
	if bet == handSize {
		rate = slamPointsPerBid
	}
	if won == bet {
		return bet * rate
	}
	diff := won - bet
	if diff < 0 {
		diff = -diff
	}
	return -diff * rate
}
