package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"ouiste/internal/app"
	"ouiste/internal/bot"
	"ouiste/internal/config"
	"ouiste/internal/domain"

	"github.com/heroiclabs/nakama-common/runtime"
)

// gRPC status codes used for RPC errors.
const (
	codeInvalidArgument = 3
	codeNotFound        = 5
	codeInternal        = 13
	codeUnauthenticated = 16
)

// RegisterRPCs wires every scorer RPC into the Nakama initializer.
func RegisterRPCs(initializer runtime.Initializer) error {
	handlers := map[string]func(context.Context, runtime.Logger, *sql.DB, runtime.NakamaModule, string) (string, error){
		RpcStart:        rpcStart,
		RpcState:        rpcState,
		RpcSubmitBets:   rpcSubmitBets,
		RpcSubmitTricks: rpcSubmitTricks,
		RpcSave:         rpcSave,
		RpcHistory:      rpcHistory,
		RpcResume:       rpcResume,
		RpcAbandon:      rpcAbandon,
		RpcBidHint:      rpcBidHint,
		RpcShare:        rpcShare,
		RpcShareVerify:  rpcShareVerify,
	}
	for id, handler := range handlers {
		if err := initializer.RegisterRpc(id, handler); err != nil {
			return err
		}
	}
	return nil
}

func newService(nk runtime.NakamaModule, logger runtime.Logger) *app.Service {
	return app.NewService(
		NewNakamaHistoryAdapter(nk, logger),
		NewNakamaSessionAdapter(nk, logger),
		nil,
	)
}

func newShareService(ctx context.Context) *app.ShareService {
	cfg := config.GetGameConfig()
	secret := ""
	if env, ok := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string); ok {
		secret = env[envShareSecret]
	}
	ttl := time.Duration(cfg.ShareTokenTTLSeconds) * time.Second
	return app.NewShareService(secret, cfg.ShareIssuer, ttl, nil)
}

func userIDFromContext(ctx context.Context) (string, error) {
	userID, ok := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)
	if !ok || userID == "" {
		return "", runtime.NewError("user id missing from context", codeUnauthenticated)
	}
	return userID, nil
}

// mapError converts a use-case failure into an RPC result. Domain validation
// rejections become a structured error payload (the transition simply did not
// happen); everything else surfaces as an RPC error with a gRPC code.
func mapError(logger runtime.Logger, op string, err error) (string, error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return marshalResponse(logger, sessionResponse{Error: toErrorView(verr)})
	case errors.Is(err, app.ErrNoActiveSession), errors.Is(err, app.ErrNoSavedGame):
		return "", runtime.NewError(err.Error(), codeNotFound)
	case errors.Is(err, domain.ErrPlayerCount),
		errors.Is(err, domain.ErrEmptyName),
		errors.Is(err, domain.ErrNameTooLong),
		errors.Is(err, domain.ErrNotBetting),
		errors.Is(err, domain.ErrNotScoring),
		errors.Is(err, domain.ErrBadHistoryEntry),
		errors.Is(err, app.ErrGameInProgress):
		return "", runtime.NewError(err.Error(), codeInvalidArgument)
	default:
		logger.Error("%s failed: %v", op, err)
		return "", runtime.NewError("internal error", codeInternal)
	}
}

func marshalResponse(logger runtime.Logger, response interface{}) (string, error) {
	data, err := json.Marshal(response)
	if err != nil {
		logger.Error("Failed to marshal RPC response: %v", err)
		return "", runtime.NewError("internal error", codeInternal)
	}
	return string(data), nil
}

func unmarshalRequest(payload string, request interface{}) error {
	if err := json.Unmarshal([]byte(payload), request); err != nil {
		return runtime.NewError("invalid request payload", codeInvalidArgument)
	}
	return nil
}

// rpcStart begins a fresh game for the caller's player names.
func rpcStart(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return "", err
	}
	var request startRequest
	if err := unmarshalRequest(payload, &request); err != nil {
		return "", err
	}

	session, events, err := newService(nk, logger).StartSession(ctx, userID, request.Players)
	if err != nil {
		return mapError(logger, "StartSession", err)
	}
	logger.Info("Started game for user %s with %d players.", userID, len(session.Players))
	return marshalResponse(logger, sessionResponse{Session: BuildSessionView(session), Events: eventKinds(events)})
}

// rpcState returns the caller's active session.
func rpcState(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return "", err
	}
	session, err := newService(nk, logger).CurrentSession(ctx, userID)
	if err != nil {
		return mapError(logger, "CurrentSession", err)
	}
	return marshalResponse(logger, sessionResponse{Session: BuildSessionView(session)})
}

// rpcSubmitBets locks the current round's bids.
func rpcSubmitBets(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return "", err
	}
	var request betsRequest
	if err := unmarshalRequest(payload, &request); err != nil {
		return "", err
	}

	session, events, err := newService(nk, logger).SubmitBets(ctx, userID, request.Bets)
	if err != nil {
		return mapError(logger, "SubmitBets", err)
	}
	return marshalResponse(logger, sessionResponse{Session: BuildSessionView(session), Events: eventKinds(events)})
}

// rpcSubmitTricks records the round's outcomes and scores it.
func rpcSubmitTricks(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return "", err
	}
	var request tricksRequest
	if err := unmarshalRequest(payload, &request); err != nil {
		return "", err
	}

	session, events, err := newService(nk, logger).SubmitTricks(ctx, userID, request.Tricks)
	if err != nil {
		return mapError(logger, "SubmitTricks", err)
	}
	if session.Phase == domain.PhaseFinished {
		logger.Info("Game finished for user %s: scores %v.", userID, session.Scores)
	}
	return marshalResponse(logger, sessionResponse{Session: BuildSessionView(session), Events: eventKinds(events)})
}

// rpcSave snapshots the active session onto the saved-game list.
func rpcSave(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return "", err
	}
	var request saveRequest
	if err := unmarshalRequest(payload, &request); err != nil {
		return "", err
	}

	gameName := strings.TrimSpace(request.GameName)
	if max := config.GetGameConfig().MaxGameNameLength; len([]rune(gameName)) > max {
		return "", runtime.NewError("game name too long", codeInvalidArgument)
	}

	entry, events, err := newService(nk, logger).SaveSession(ctx, userID, gameName)
	if err != nil {
		return mapError(logger, "SaveSession", err)
	}
	return marshalResponse(logger, saveResponse{Entry: entry, Events: eventKinds(events)})
}

// rpcHistory lists saved games, newest first.
func rpcHistory(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return "", err
	}
	entries, err := newService(nk, logger).ListHistory(ctx, userID)
	if err != nil {
		return mapError(logger, "ListHistory", err)
	}
	if entries == nil {
		entries = []domain.HistoryEntry{}
	}
	return marshalResponse(logger, historyResponse{Entries: entries})
}

// rpcResume reactivates the most recent in-progress saved game.
func rpcResume(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return "", err
	}
	session, events, err := newService(nk, logger).ResumeLatest(ctx, userID)
	if err != nil {
		return mapError(logger, "ResumeLatest", err)
	}
	logger.Info("Resumed game for user %s at round %d.", userID, session.CurrentRound)
	return marshalResponse(logger, sessionResponse{Session: BuildSessionView(session), Events: eventKinds(events)})
}

// rpcAbandon discards the active session without saving.
func rpcAbandon(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return "", err
	}
	if err := newService(nk, logger).AbandonSession(ctx, userID); err != nil {
		return mapError(logger, "AbandonSession", err)
	}
	return marshalResponse(logger, sessionResponse{})
}

// rpcBidHint suggests a legal bid for the next seat to speak.
func rpcBidHint(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return "", err
	}
	var request hintRequest
	if err := unmarshalRequest(payload, &request); err != nil {
		return "", err
	}

	session, err := newService(nk, logger).CurrentSession(ctx, userID)
	if err != nil {
		return mapError(logger, "CurrentSession", err)
	}
	playersAfter := len(session.Players) - len(request.PriorBets) - 1
	if playersAfter < 0 {
		return "", runtime.NewError("more prior bets than seats", codeInvalidArgument)
	}

	bid := bot.SuggestBid(session.HandSize(), request.PriorBets, playersAfter)
	return marshalResponse(logger, hintResponse{Bid: bid})
}

// rpcShare signs the standings of a saved finished game.
func rpcShare(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return "", err
	}
	var request shareRequest
	if err := unmarshalRequest(payload, &request); err != nil {
		return "", err
	}

	entries, err := newService(nk, logger).ListHistory(ctx, userID)
	if err != nil {
		return mapError(logger, "ListHistory", err)
	}
	if request.Index < 0 || request.Index >= len(entries) {
		return "", runtime.NewError("no saved game at that index", codeNotFound)
	}

	token, err := newShareService(ctx).GenerateToken(entries[request.Index])
	if err != nil {
		return mapError(logger, "GenerateToken", err)
	}
	return marshalResponse(logger, shareResponse{Token: token})
}

// rpcShareVerify validates a shared-result token and returns its claims.
func rpcShareVerify(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	var request verifyRequest
	if err := unmarshalRequest(payload, &request); err != nil {
		return "", err
	}

	claims, err := newShareService(ctx).VerifyToken(request.Token)
	if err != nil {
		return "", runtime.NewError("invalid share token", codeInvalidArgument)
	}
	return marshalResponse(logger, verifyResponse{Claims: claims})
}
