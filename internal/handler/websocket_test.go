package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/gommon/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zizouhuweidi/trivia/internal/domain"
	"github.com/zizouhuweidi/trivia/internal/repository/sqlite"
	"github.com/zizouhuweidi/trivia/internal/service"
	ws "github.com/zizouhuweidi/trivia/internal/websocket"
)

func TestQuestionFeed(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	hub := ws.NewHub(log.New("test"))
	go hub.Run(ctx)

	db := openDB(t)
	svc := service.NewTriviaService(sqlite.NewQuestionRepository(db), sqlite.NewCategoryRepository(db), nil, hub)
	e := NewRouter(RouterConfig{Service: svc, Hub: hub, LogLevel: log.OFF})
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws?category=1"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	// an Art question is filtered out, the Science one is delivered
	for _, body := range []string{
		`{"question":"Who painted Guernica?","answer":"Picasso","category":"2","difficulty":"2"}`,
		`{"question":"What is H2O?","answer":"Water","category":"1","difficulty":"1"}`,
	} {
		resp, err := http.Post(srv.URL+"/questions", "application/json", strings.NewReader(body))
		require.NoError(t, err)
		resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var msg ws.Message
	require.NoError(t, json.Unmarshal(data, &msg))
	assert.Equal(t, domain.EventQuestionCreated, msg.Type)

	var q domain.Question
	require.NoError(t, json.Unmarshal(msg.Payload, &q))
	assert.Equal(t, "What is H2O?", q.Question)
	assert.Equal(t, 1, q.Category)
}

func TestQuestionFeedInvalidCategory(t *testing.T) {
	hub := ws.NewHub(log.New("test"))
	api := newTestAPI(t, func(cfg *RouterConfig) { cfg.Hub = hub })

	rec, data := api.do(t, http.MethodGet, "/ws?category=abc", "")
	assertError(t, rec, data, http.StatusBadRequest, "Bad Request")
}

func TestQuestionFeedDisabled(t *testing.T) {
	api := newTestAPI(t)

	rec, _ := api.do(t, http.MethodGet, "/ws", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
