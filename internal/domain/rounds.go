package domain

// Player count limits for a game of Ouiste.
const (
	MinPlayers = 3
	MaxPlayers = 6
)

const (
	// RampMax is the largest hand size on the ascending and descending ramps.
	// The 2019 house ruleset capped the ramp at 8; the current one stops at 7.
	RampMax = 7

	// FullHandSize is the hand size during the hold rounds in the middle of a
	// game. It stays 8 in every ruleset revision regardless of RampMax.
	FullHandSize = 8
)

// GenerateRounds returns the ordered hand sizes for a whole game:
// an ascending ramp 1..RampMax, one full-deck hold round per player,
// then a descending ramp RampMax..1.
//
// The result is fixed for the life of a game. Callers must enforce
// playerCount in [MinPlayers, MaxPlayers]; behavior outside that range is
// unspecified.
func GenerateRounds(playerCount int) []int {
	rounds := make([]int, 0, 2*RampMax+playerCount)
	for size := 1; size <= RampMax; size++ {
		rounds = append(rounds, size)
	}
	for i := 0; i < playerCount; i++ {
		rounds = append(rounds, FullHandSize)
	}
	for size := RampMax; size >= 1; size-- {
		rounds = append(rounds, size)
	}
	return rounds
}
