package onboarding

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"ouiste/internal/domain"
	"ouiste/internal/ports"
)

// Result captures non-fatal onboarding outcomes.
type Result struct {
	// ProfileUpdateErr is set when the profile update failed but onboarding continued.
	ProfileUpdateErr error
}

// Service handles post-auth onboarding for new users: a friendly display name
// and an empty saved-game collection so the first history read is clean.
type Service struct {
	accounts ports.AccountPort
	history  ports.HistoryPort
	rng      *rand.Rand
}

// NewService constructs an onboarding service with required ports.
// accounts/history must be non-nil; rng may be nil to use a time-seeded default.
func NewService(accounts ports.AccountPort, history ports.HistoryPort, rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{
		accounts: accounts,
		history:  history,
		rng:      rng,
	}
}

// OnboardNewUser initializes profile and storage for a newly created account.
// Returns a Result with any non-fatal issues and an error if the saved-game
// collection cannot be seeded.
func (s *Service) OnboardNewUser(ctx context.Context, userID string) (Result, error) {
	if s.accounts == nil || s.history == nil {
		return Result{}, fmt.Errorf("onboarding service not configured")
	}

	result := Result{}
	displayName := s.generateFriendlyName()
	if err := s.accounts.UpdateProfile(ctx, userID, displayName, displayName); err != nil {
		// Profile updates are best-effort; the storage seed matters more.
		result.ProfileUpdateErr = err
	}

	if err := s.history.Replace(ctx, userID, []domain.HistoryEntry{}); err != nil {
		return result, fmt.Errorf("failed to seed saved games: %w", err)
	}

	return result, nil
}

func (s *Service) generateFriendlyName() string {
	adjectives := []string{"Happy", "Shiny", "Brave", "Clever", "Swift", "Calm", "Mighty", "Witty", "Sly", "Wild"}
	nouns := []string{"Panda", "Tiger", "Eagle", "Dolphin", "Wolf", "Otter", "Falcon", "Bear", "Fox", "Lion"}

	adj := adjectives[s.rng.Intn(len(adjectives))]
	noun := nouns[s.rng.Intn(len(nouns))]
	num := s.rng.Intn(9000) + 1000

	return fmt.Sprintf("%s%s%d", adj, noun, num)
}
