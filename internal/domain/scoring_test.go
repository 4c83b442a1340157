package domain

import (
	"reflect"
	"testing"
)

func TestScoreRound(t *testing.T) {
	tests := []struct {
		name     string
		bets     []int
		tricks   []int
		handSize int
		want     []int
	}{
		{
			name:     "mixed table",
			bets:     []int{0, 2, 3},
			tricks:   []int{0, 2, 2},
			handSize: 5,
			want:     []int{5, 20, -10},
		},
		{
			name:     "slam bid made",
			bets:     []int{5},
			tricks:   []int{5},
			handSize: 5,
			want:     []int{100},
		},
		{
			name:     "slam bid missed",
			bets:     []int{5},
			tricks:   []int{3},
			handSize: 5,
			want:     []int{-40},
		},
		{
			name:     "zero bid broken",
			bets:     []int{0},
			tricks:   []int{3},
			handSize: 5,
			want:     []int{-30},
		},
		{
			name:     "miss by two",
			bets:     []int{2},
			tricks:   []int{4},
			handSize: 8,
			want:     []int{-20},
		},
		{
			name:     "one-card hand is always a slam",
			bets:     []int{1, 0, 0},
			tricks:   []int{1, 0, 0},
			handSize: 1,
			want:     []int{20, 5, 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreRound(tt.bets, tt.tricks, tt.handSize)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ScoreRound() = %v, want %v", got, tt.want)
			}
		})
	}
}

// Each seat's delta depends only on that seat's own bet and tricks, so
// permuting the table must permute the output identically.
func TestScoreRoundSeatIndependence(t *testing.T) {
	forward := ScoreRound([]int{0, 1, 4}, []int{1, 1, 3}, 4)
	reversed := ScoreRound([]int{4, 1, 0}, []int{3, 1, 1}, 4)
	for i := range forward {
		if forward[i] != reversed[len(reversed)-1-i] {
			t.Fatalf("seat scores not independent: %v vs %v", forward, reversed)
		}
	}
}
