package domain

import (
	"errors"
	"strings"
)

// Phase represents the lifecycle stage of a game session.
type Phase string

const (
	// PhaseBet is the state collecting bids for the current round.
	PhaseBet Phase = "bet"
	// PhaseTricks is the state collecting trick outcomes for the current round.
	PhaseTricks Phase = "tricks"
	// PhaseFinished is the terminal state after the last round is scored.
	PhaseFinished Phase = "finished"
)

// MaxNameLength bounds player display names, matching the table sheet cells.
const MaxNameLength = 16

var (
	ErrPlayerCount = errors.New("player count must be between 3 and 6")
	ErrEmptyName   = errors.New("player name must not be empty")
	ErrNameTooLong = errors.New("player name too long")
	ErrNotBetting  = errors.New("session is not collecting bets")
	ErrNotScoring  = errors.New("session is not collecting tricks")
)

// Player is a seat at the table. Seats are 0-based and stable for the session.
type Player struct {
	Seat int    `json:"seat"`
	Name string `json:"name"`
}

// RoundRecord is one locked round. Points is derived data: it always equals
// ScoreRound(Bets, Tricks, HandSize) and is stored only for display replay.
type RoundRecord struct {
	HandSize int   `json:"hand_size"`
	Bets     []int `json:"bets"`
	Tricks   []int `json:"tricks"`
	Points   []int `json:"points"`
}

// GameSession holds the authoritative state for one scored game. It is
// mutated only through SubmitBets and SubmitTricks; both validate fully
// before touching any field.
type GameSession struct {
	Players      []Player      `json:"players"`
	RoundSpec    []int         `json:"round_spec"`
	CurrentRound int           `json:"current_round"`
	Phase        Phase         `json:"phase"`
	Scores       []int         `json:"scores"`
	Rounds       []RoundRecord `json:"rounds"`

	// PendingBets holds the bids locked for the round in flight. They become
	// part of a RoundRecord once tricks are submitted and are intentionally
	// dropped by mid-round saves.
	PendingBets []int `json:"pending_bets,omitempty"`
}

// NewSession starts a fresh game for the given display names, in seat order.
// Names are trimmed and must be non-empty and at most MaxNameLength runes.
func NewSession(names []string) (*GameSession, error) {
	if len(names) < MinPlayers || len(names) > MaxPlayers {
		return nil, ErrPlayerCount
	}

	players := make([]Player, len(names))
	for i, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, ErrEmptyName
		}
		if len([]rune(name)) > MaxNameLength {
			return nil, ErrNameTooLong
		}
		players[i] = Player{Seat: i, Name: name}
	}

	return &GameSession{
		Players:   players,
		RoundSpec: GenerateRounds(len(players)),
		Phase:     PhaseBet,
		Scores:    make([]int, len(players)),
	}, nil
}

// HandSize returns the number of cards dealt in the current round, or 0 once
// the session is finished.
func (s *GameSession) HandSize() int {
	if s.CurrentRound >= len(s.RoundSpec) {
		return 0
	}
	return s.RoundSpec[s.CurrentRound]
}

// TotalRounds returns the fixed number of rounds in the game.
func (s *GameSession) TotalRounds() int {
	return len(s.RoundSpec)
}

// SubmitBets locks the bids for the current round and moves the session to
// trick collection. Rejections leave the session untouched: every seat must
// have a bid in [0, handSize] and the bids must not total the hand size.
func (s *GameSession) SubmitBets(bets []int) error {
	if s.Phase != PhaseBet {
		return ErrNotBetting
	}
	handSize := s.HandSize()
	if len(bets) != len(s.Players) {
		return validationErr(IncompleteInput, -1, "need %d bids, got %d", len(s.Players), len(bets))
	}

	sum := 0
	for seat, bet := range bets {
		if bet < 0 || bet > handSize {
			return validationErr(OutOfRange, seat, "bid %d outside [0, %d]", bet, handSize)
		}
		sum += bet
	}
	if sum == handSize {
		return validationErr(ForbiddenBetSum, -1, "bids total the hand size (%d)", handSize)
	}

	s.PendingBets = append([]int(nil), bets...)
	s.Phase = PhaseTricks
	return nil
}

// SubmitTricks records the tricks actually won, scores the round, and either
// advances to the next round's betting or finishes the game. Rejections leave
// the session untouched: every seat reports tricks in [0, handSize] and the
// table cannot collectively win more tricks than cards were dealt.
func (s *GameSession) SubmitTricks(tricks []int) error {
	if s.Phase != PhaseTricks {
		return ErrNotScoring
	}
	handSize := s.HandSize()
	if len(tricks) != len(s.Players) {
		return validationErr(IncompleteInput, -1, "need %d trick counts, got %d", len(s.Players), len(tricks))
	}

	sum := 0
	for seat, won := range tricks {
		if won < 0 {
			return validationErr(OutOfRange, seat, "tricks %d outside [0, %d]", won, handSize)
		}
		if won > handSize {
			return validationErr(TrickOverLimit, seat, "tricks %d exceed hand size %d", won, handSize)
		}
		sum += won
	}
	if sum > handSize {
		return validationErr(TrickSumOverLimit, -1, "table took %d tricks from a %d-card hand", sum, handSize)
	}

	points := ScoreRound(s.PendingBets, tricks, handSize)
	for i, p := range points {
		s.Scores[i] += p
	}
	s.Rounds = append(s.Rounds, RoundRecord{
		HandSize: handSize,
		Bets:     s.PendingBets,
		Tricks:   append([]int(nil), tricks...),
		Points:   points,
	})
	s.PendingBets = nil

	if s.CurrentRound+1 == len(s.RoundSpec) {
		s.Phase = PhaseFinished
		return nil
	}
	s.CurrentRound++
	s.Phase = PhaseBet
	return nil
}

// Winners returns the seats sharing the highest cumulative score. Ties stand;
// nil is returned while the game is still running.
func (s *GameSession) Winners() []int {
	if s.Phase != PhaseFinished {
		return nil
	}
	max := s.Scores[0]
	for _, score := range s.Scores[1:] {
		if score > max {
			max = score
		}
	}
	var winners []int
	for seat, score := range s.Scores {
		if score == max {
			winners = append(winners, seat)
		}
	}
	return winners
}
