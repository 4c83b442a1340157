package domain

import (
	"reflect"
	"testing"
)

func TestGenerateRoundsLength(t *testing.T) {
	for playerCount := MinPlayers; playerCount <= MaxPlayers; playerCount++ {
		got := len(GenerateRounds(playerCount))
		want := RampMax + playerCount + RampMax
		if got != want {
			t.Errorf("players=%d: len = %d, want %d", playerCount, got, want)
		}
	}
}

func TestGenerateRoundsShape(t *testing.T) {
	got := GenerateRounds(3)
	want := []int{1, 2, 3, 4, 5, 6, 7, 8, 8, 8, 7, 6, 5, 4, 3, 2, 1}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("GenerateRounds(3) = %v, want %v", got, want)
	}
}

func TestGenerateRoundsHoldSegment(t *testing.T) {
	for playerCount := MinPlayers; playerCount <= MaxPlayers; playerCount++ {
		rounds := GenerateRounds(playerCount)
		for i := RampMax; i < RampMax+playerCount; i++ {
			if rounds[i] != FullHandSize {
				t.Errorf("players=%d: rounds[%d] = %d, want %d", playerCount, i, rounds[i], FullHandSize)
			}
		}
	}
}
