package app

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"ouiste/internal/domain"
)

func testEntry() domain.HistoryEntry {
	return domain.HistoryEntry{
		Date:        time.Date(2025, 11, 3, 22, 0, 0, 0, time.UTC),
		GameName:    "club night",
		PlayerNames: []string{"Ana", "Bo", "Cleo"},
		FinalScores: []int{120, 120, -45},
	}
}

func TestGenerateAndVerifyToken(t *testing.T) {
	// jwt.Parse checks expiry against the real clock, so sign relative to it.
	svc := NewShareService("secret", "ouiste", time.Hour, nil)

	token, err := svc.GenerateToken(testEntry())
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	claims, err := svc.VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken error: %v", err)
	}
	if claims["iss"] != "ouiste" || claims["game"] != "club night" {
		t.Fatalf("claims = %v", claims)
	}
	winners, ok := claims["winners"].([]interface{})
	if !ok {
		t.Fatalf("winners claim = %v", claims["winners"])
	}
	if !reflect.DeepEqual(winners, []interface{}{"Ana", "Bo"}) {
		t.Fatalf("winners = %v, want tied Ana and Bo", winners)
	}
}

func TestGenerateTokenRejectsInProgress(t *testing.T) {
	svc := NewShareService("secret", "ouiste", time.Hour, nil)
	entry := testEntry()
	entry.InProgress = true
	if _, err := svc.GenerateToken(entry); !errors.Is(err, ErrGameInProgress) {
		t.Fatalf("error = %v, want ErrGameInProgress", err)
	}
}

func TestGenerateTokenRequiresConfig(t *testing.T) {
	svc := NewShareService("", "", time.Hour, nil)
	if _, err := svc.GenerateToken(testEntry()); err == nil {
		t.Fatal("expected config error")
	}
}

func TestVerifyTokenRejectsWrongSecret(t *testing.T) {
	signer := NewShareService("secret-a", "ouiste", time.Hour, nil)
	verifier := NewShareService("secret-b", "ouiste", time.Hour, nil)

	token, err := signer.GenerateToken(testEntry())
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	if _, err := verifier.VerifyToken(token); err == nil {
		t.Fatal("expected signature mismatch error")
	}
}
