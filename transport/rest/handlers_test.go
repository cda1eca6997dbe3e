package rest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
	"github.com/rocketscienceinc/tictactoe-engine/internal/service"
	"github.com/rocketscienceinc/tictactoe-engine/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	handler http.Handler
	logPath string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := suite.NewLogger()
	logPath := filepath.Join(t.TempDir(), "scores_log.txt")

	bot := service.NewBotService()
	scores := service.NewScoreService(logger, repository.NewMemoryScoreRepository(), repository.NewScoreLog(logPath))
	gamePlay := service.NewGamePlayService(logger, service.NewGameService(repository.NewMemoryGameRepository()), scores, bot)

	return &testServer{
		handler: NewRouter(logger, gamePlay, scores, bot),
		logPath: logPath,
	}
}

func (that *testServer) do(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rr := httptest.NewRecorder()
	that.handler.ServeHTTP(rr, req)

	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())

	return v
}

func TestPing(t *testing.T) {
	srv := newTestServer(t)

	rr := srv.do(t, http.MethodGet, "/ping", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "pong", rr.Body.String())
}

func TestGameFlow(t *testing.T) {
	srv := newTestServer(t)

	// Given: a new game against the bot
	rr := srv.do(t, http.MethodPost, "/games", `{"mode":"bot"}`)
	require.Equal(t, http.StatusCreated, rr.Code)
	game := decode[entity.Game](t, rr)
	assert.Equal(t, entity.PlayerX, game.Turn)

	// When: the human plays a corner
	rr = srv.do(t, http.MethodPost, "/games/"+game.ID+"/moves", `{"row":0,"col":0}`)

	// Then: the bot answered in the center
	require.Equal(t, http.StatusOK, rr.Code)
	game = decode[entity.Game](t, rr)
	assert.Equal(t, "X...O....", game.Board.String())

	// When: the human plays an occupied cell
	rr = srv.do(t, http.MethodPost, "/games/"+game.ID+"/moves", `{"row":1,"col":1}`)

	// Then: the move is rejected with a conflict
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, decode[errorResponse](t, rr).Error, "occupied")

	// When: the human plays out of range
	rr = srv.do(t, http.MethodPost, "/games/"+game.ID+"/moves", `{"row":3,"col":0}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	// When: the game is fetched
	rr = srv.do(t, http.MethodGet, "/games/"+game.ID, "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decode[entity.Game](t, rr).Moves, 2)

	// When: the game is restarted
	rr = srv.do(t, http.MethodPost, "/games/"+game.ID+"/restart", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, entity.Snapshot{}, decode[entity.Game](t, rr).Board)

	// When: the game is deleted
	rr = srv.do(t, http.MethodDelete, "/games/"+game.ID, "")
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = srv.do(t, http.MethodGet, "/games/"+game.ID, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestCreateGame(t *testing.T) {
	srv := newTestServer(t)

	t.Run("Empty body defaults to a bot game", func(t *testing.T) {
		rr := srv.do(t, http.MethodPost, "/games", "")

		require.Equal(t, http.StatusCreated, rr.Code)
		assert.Equal(t, entity.ModeBot, decode[entity.Game](t, rr).Mode)
	})

	t.Run("Unknown mode", func(t *testing.T) {
		rr := srv.do(t, http.MethodPost, "/games", `{"mode":"online"}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Malformed body", func(t *testing.T) {
		rr := srv.do(t, http.MethodPost, "/games", `{`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestMakeTurn_BadRequest(t *testing.T) {
	srv := newTestServer(t)

	rr := srv.do(t, http.MethodPost, "/games", `{"mode":"human"}`)
	require.Equal(t, http.StatusCreated, rr.Code)
	game := decode[entity.Game](t, rr)

	rr = srv.do(t, http.MethodPost, "/games/"+game.ID+"/moves", `{"row":1}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = srv.do(t, http.MethodPost, "/games/missing/moves", `{"row":1,"col":1}`)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGameOver(t *testing.T) {
	srv := newTestServer(t)

	rr := srv.do(t, http.MethodPost, "/games", `{"mode":"human"}`)
	require.Equal(t, http.StatusCreated, rr.Code)
	id := decode[entity.Game](t, rr).ID

	// X wins on the first column
	for _, move := range []string{`{"row":0,"col":0}`, `{"row":0,"col":1}`, `{"row":1,"col":0}`, `{"row":1,"col":1}`, `{"row":2,"col":0}`} {
		rr = srv.do(t, http.MethodPost, "/games/"+id+"/moves", move)
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	}

	game := decode[entity.Game](t, rr)
	assert.Equal(t, entity.StatusFinished, game.Status)
	assert.Equal(t, "X", game.Winner)

	rr = srv.do(t, http.MethodPost, "/games/"+id+"/moves", `{"row":2,"col":2}`)
	assert.Equal(t, http.StatusConflict, rr.Code)

	rr = srv.do(t, http.MethodGet, "/scores", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, entity.Tally{XWins: 1}, decode[entity.Tally](t, rr))
}

func TestSuggestMove(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name   string
		query  string
		status int
		pos    entity.Position
	}{
		{name: "center on empty board", query: "board=.........&player=O", status: http.StatusOK, pos: entity.Position{Row: 1, Col: 1}},
		{name: "block", query: "board=XX.......&player=O", status: http.StatusOK, pos: entity.Position{Row: 0, Col: 2}},
		{name: "win", query: "board=...OO....&player=O", status: http.StatusOK, pos: entity.Position{Row: 1, Col: 2}},
		{name: "full board", query: "board=XOXXOOOXX&player=O", status: http.StatusConflict},
		{name: "bad board", query: "board=XO&player=O", status: http.StatusBadRequest},
		{name: "missing player", query: "board=.........", status: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := srv.do(t, http.MethodGet, "/bot/move?"+tt.query, "")

			require.Equal(t, tt.status, rr.Code, rr.Body.String())
			if tt.status == http.StatusOK {
				assert.Equal(t, tt.pos, decode[entity.Position](t, rr))
			}
		})
	}
}

func TestScores(t *testing.T) {
	srv := newTestServer(t)

	// When: scores are exported
	rr := srv.do(t, http.MethodPost, "/scores/export", "")

	// Then: the log file holds the zero tally
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, srv.logPath, decode[exportResponse](t, rr).Path)

	content, err := os.ReadFile(srv.logPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), "X Wins: 0\nO Wins: 0\nDraws: 0\n"))

	// When: scores are reset
	rr = srv.do(t, http.MethodDelete, "/scores", "")
	assert.Equal(t, http.StatusNoContent, rr.Code)
}
