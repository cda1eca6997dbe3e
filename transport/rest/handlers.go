package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type gamePlayService interface {
	NewGame(ctx context.Context, mode string) (*entity.Game, error)
	GetGame(ctx context.Context, gameID string) (*entity.Game, error)
	RestartGame(ctx context.Context, gameID string) (*entity.Game, error)
	DeleteGame(ctx context.Context, gameID string) error
	MakeTurn(ctx context.Context, gameID string, row, col int) (*entity.Game, error)
}

type scoreService interface {
	GetScores(ctx context.Context) (*entity.Tally, error)
	ResetScores(ctx context.Context) error
	ExportScores(ctx context.Context) (string, error)
}

type strategy interface {
	SelectMove(board entity.Snapshot, opponent entity.Player) (entity.Position, bool)
}

type handlers struct {
	logger *slog.Logger

	gamePlay gamePlayService
	scores   scoreService
	strategy strategy
}

type createGameRequest struct {
	Mode string `json:"mode"`
}

type moveRequest struct {
	Row *int `json:"row"`
	Col *int `json:"col"`
}

type exportResponse struct {
	Path string `json:"path"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (that *handlers) createGame(w http.ResponseWriter, r *http.Request) {
	// an empty body starts a game against the bot
	req := createGameRequest{Mode: entity.ModeBot}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		that.writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	game, err := that.gamePlay.NewGame(r.Context(), req.Mode)
	if err != nil {
		that.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, game)
}

func (that *handlers) getGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.gamePlay.GetGame(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, game)
}

func (that *handlers) deleteGame(w http.ResponseWriter, r *http.Request) {
	if err := that.gamePlay.DeleteGame(r.Context(), chi.URLParam(r, "id")); err != nil {
		that.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (that *handlers) makeTurn(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Row == nil || req.Col == nil {
		that.writeError(w, r, http.StatusBadRequest, "row and col are required")
		return
	}

	game, err := that.gamePlay.MakeTurn(r.Context(), chi.URLParam(r, "id"), *req.Row, *req.Col)
	if err != nil {
		that.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, game)
}

func (that *handlers) restartGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.gamePlay.RestartGame(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, game)
}

// suggestMove runs the bot on any board, e.g. /bot/move?board=XX.......&player=O.
func (that *handlers) suggestMove(w http.ResponseWriter, r *http.Request) {
	board, err := entity.ParseSnapshot(r.URL.Query().Get("board"))
	if err != nil {
		that.handleError(w, r, err)
		return
	}

	player, err := entity.ParsePlayer(r.URL.Query().Get("player"))
	if err != nil || !player.Valid() {
		that.writeError(w, r, http.StatusBadRequest, "player must be X or O")
		return
	}

	pos, ok := that.strategy.SelectMove(board, player)
	if !ok {
		that.handleError(w, r, apperror.ErrNoAvailableMoves)
		return
	}

	writeJSON(w, http.StatusOK, pos)
}

func (that *handlers) getScores(w http.ResponseWriter, r *http.Request) {
	tally, err := that.scores.GetScores(r.Context())
	if err != nil {
		that.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, tally)
}

func (that *handlers) resetScores(w http.ResponseWriter, r *http.Request) {
	if err := that.scores.ResetScores(r.Context()); err != nil {
		that.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (that *handlers) exportScores(w http.ResponseWriter, r *http.Request) {
	path, err := that.scores.ExportScores(r.Context())
	if err != nil {
		that.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, exportResponse{Path: path})
}

func (that *handlers) handleError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		that.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		that.writeError(w, r, status, http.StatusText(status))
		return
	}

	that.writeError(w, r, status, err.Error())
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, apperror.ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrOutOfRange),
		errors.Is(err, apperror.ErrInvalidMode),
		errors.Is(err, apperror.ErrInvalidBoard),
		errors.Is(err, apperror.ErrInvalidPlayer):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrIllegalMove),
		errors.Is(err, apperror.ErrGameOver),
		errors.Is(err, apperror.ErrNotYourTurn),
		errors.Is(err, apperror.ErrNoAvailableMoves):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (that *handlers) writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	that.logger.Debug("request rejected", "path", r.URL.Path, "status", status, "error", message)
	writeJSON(w, status, errorResponse{Error: message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
