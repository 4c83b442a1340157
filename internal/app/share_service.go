package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/form3tech-oss/jwt-go"

	"ouiste/internal/domain"
)

// ErrGameInProgress is returned when sharing a game that is not finished.
var ErrGameInProgress = errors.New("cannot share an unfinished game")

// ShareService signs final standings so players can post a verifiable result
// (group chats, club leaderboards) without exposing the storage itself.
type ShareService struct {
	secret string
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewShareService constructs a ShareService. now may be nil to use the wall
// clock; ttl <= 0 defaults to 30 days.
func NewShareService(secret, issuer string, ttl time.Duration, now func() time.Time) *ShareService {
	if ttl <= 0 {
		ttl = 30 * 24 * time.Hour
	}
	if now == nil {
		now = time.Now
	}
	return &ShareService{
		secret: secret,
		issuer: issuer,
		ttl:    ttl,
		now:    now,
	}
}

// GenerateToken signs a finished game's standings as an HS256 JWT.
func (s *ShareService) GenerateToken(entry domain.HistoryEntry) (string, error) {
	if s == nil {
		return "", fmt.Errorf("share service is nil")
	}
	if s.secret == "" || s.issuer == "" {
		return "", fmt.Errorf("share config is incomplete")
	}
	if entry.InProgress {
		return "", ErrGameInProgress
	}

	scores := make([]int64, len(entry.FinalScores))
	for i, sc := range entry.FinalScores {
		scores[i] = int64(sc)
	}

	issuedAt := s.now()
	claims := jwt.MapClaims{
		"iss":     s.issuer,
		"iat":     issuedAt.Unix(),
		"exp":     issuedAt.Add(s.ttl).Unix(),
		"game":    entry.GameName,
		"date":    entry.Date.UTC().Format(time.RFC3339),
		"players": entry.PlayerNames,
		"scores":  scores,
		"winners": winnerNames(entry),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}

// VerifyToken checks a shared token's signature and expiry and returns its
// claims.
func (s *ShareService) VerifyToken(tokenString string) (jwt.MapClaims, error) {
	if s == nil || s.secret == "" {
		return nil, fmt.Errorf("share config is incomplete")
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid share token: %w", err)
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid share token claims")
	}
	return claims, nil
}

func winnerNames(entry domain.HistoryEntry) []string {
	if len(entry.FinalScores) == 0 {
		return nil
	}
	max := entry.FinalScores[0]
	for _, sc := range entry.FinalScores[1:] {
		if sc > max {
			max = sc
		}
	}
	var names []string
	for i, sc := range entry.FinalScores {
		if sc == max && i < len(entry.PlayerNames) {
			names = append(names, entry.PlayerNames[i])
		}
	}
	return names
}
