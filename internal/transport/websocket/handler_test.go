package websocket

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/iamasit07/4-in-a-row/console/internal/domain"
	"github.com/iamasit07/4-in-a-row/console/internal/service/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialWatch(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/watch"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) ServerMessage {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var msg ServerMessage
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func TestFeed_SpectatorReceivesMoves(t *testing.T) {
	cm := NewConnectionManager()
	srv := httptest.NewServer(NewHandler(cm).Routes())
	defer srv.Close()

	conn := dialWatch(t, srv)
	first := readMessage(t, conn)
	assert.Equal(t, "snapshot", first.Type)
	assert.Equal(t, 1, cm.Count())

	feed := NewFeed(cm)
	players := [2]domain.Player{{Name: "Ann", Token: domain.Player1}, {Name: "Bob", Token: domain.Player2}}
	board, err := domain.NewBoard(6, 7)
	require.NoError(t, err)

	feed.RoundStarted(game.RoundInfo{SessionID: "s1", Number: 1, Total: 2, Players: players}, board)
	row, err := board.Drop(3, domain.Player1)
	require.NoError(t, err)
	feed.MoveApplied(&players[0], domain.Move{Column: 3}, row, board)

	start := readMessage(t, conn)
	assert.Equal(t, "round_start", start.Type)
	assert.Equal(t, "s1", start.SessionID)
	assert.Equal(t, 2, start.TotalRounds)
	require.Len(t, start.Scores, 2)
	assert.Equal(t, "Bob", start.Scores[1].Name)

	move := readMessage(t, conn)
	assert.Equal(t, "move_made", move.Type)
	assert.Equal(t, "Ann", move.Player)
	assert.Equal(t, 4, move.Column)
	assert.Equal(t, 6, move.Row)
	require.Len(t, move.Board, 6)
	assert.Equal(t, int(domain.Player1), move.Board[5][3])
}

func TestFeed_LateSpectatorGetsLatestState(t *testing.T) {
	cm := NewConnectionManager()
	srv := httptest.NewServer(NewHandler(cm).Routes())
	defer srv.Close()

	feed := NewFeed(cm)
	winner := domain.Player{Name: "Ann", Token: domain.Player1, Score: 2}
	board, err := domain.NewBoard(5, 5)
	require.NoError(t, err)

	feed.RoundFinished(game.RoundSummary{
		RoundInfo: game.RoundInfo{SessionID: "s2", Number: 1, Total: 1,
			Players: [2]domain.Player{winner, {Name: "Bob", Token: domain.Player2}}},
		Outcome: domain.Outcome{State: domain.StateWon, Winner: &winner},
		Board:   board,
	})

	conn := dialWatch(t, srv)
	snap := readMessage(t, conn)
	assert.Equal(t, "snapshot", snap.Type)
	assert.Equal(t, "Ann", snap.Winner)
	assert.Equal(t, "connect_four", snap.Reason)
}

func TestHandleState(t *testing.T) {
	cm := NewConnectionManager()
	srv := httptest.NewServer(NewHandler(cm).Routes())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/state")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	NewFeed(cm).SessionEnded(game.Result{
		SessionID:    "s3",
		Players:      [2]domain.Player{{Name: "Ann", Score: 1}, {Name: "Bob", Score: 3}},
		RoundsPlayed: 2,
		TotalRounds:  3,
		EndedEarly:   true,
	})

	resp, err = http.Get(srv.URL + "/api/state")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var msg ServerMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&msg))
	assert.Equal(t, "session_over", msg.Type)
	assert.Equal(t, "Bob", msg.Winner)
	assert.Equal(t, "ended_early", msg.Reason)
}

func TestConnectionManager_CloseAll(t *testing.T) {
	cm := NewConnectionManager()
	srv := httptest.NewServer(NewHandler(cm).Routes())
	defer srv.Close()

	conn := dialWatch(t, srv)
	readMessage(t, conn)

	cm.CloseAll()
	assert.Equal(t, 0, cm.Count())

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, _, err := conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseNormalClosure), "got %v", err)

	cm.BroadcastMessage(ServerMessage{Type: "ignored"})
	_, ok := cm.Latest()
	assert.False(t, ok)
}
