//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/tjwls11/diary111/internal/adapter/postgres"
	calendarrepo "github.com/tjwls11/diary111/internal/adapter/postgres/calendar"
	diaryrepo "github.com/tjwls11/diary111/internal/adapter/postgres/diary"
	quoterepo "github.com/tjwls11/diary111/internal/adapter/postgres/quote"
	stickerrepo "github.com/tjwls11/diary111/internal/adapter/postgres/sticker"
	"github.com/tjwls11/diary111/internal/adapter/postgres/testhelper"
	userrepo "github.com/tjwls11/diary111/internal/adapter/postgres/user"
	authpkg "github.com/tjwls11/diary111/internal/auth"
	"github.com/tjwls11/diary111/internal/config"
	authsvc "github.com/tjwls11/diary111/internal/service/auth"
	calendarsvc "github.com/tjwls11/diary111/internal/service/calendar"
	diarysvc "github.com/tjwls11/diary111/internal/service/diary"
	quotesvc "github.com/tjwls11/diary111/internal/service/quote"
	stickersvc "github.com/tjwls11/diary111/internal/service/sticker"
	usersvc "github.com/tjwls11/diary111/internal/service/user"
	"github.com/tjwls11/diary111/internal/transport/rest"
	"github.com/tjwls11/diary111/internal/upload"
)

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the full application stack backed by a real
// PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)

	users := userrepo.New(pool)
	diaries := diaryrepo.New(pool)
	marks := calendarrepo.New(pool)
	stickers := stickerrepo.New(pool)
	quotes := quoterepo.New(pool)

	authCfg := config.AuthConfig{
		JWTSecret:        "test-secret-at-least-32-chars-long!!",
		JWTIssuer:        "diary-test",
		TokenTTL:         15 * time.Minute,
		PasswordHashCost: 4,
	}
	jwtMgr := authpkg.NewJWTManager(authCfg.JWTSecret, authCfg.JWTIssuer, authCfg.TokenTTL)

	uploads, err := upload.NewStore(t.TempDir())
	require.NoError(t, err)

	authService := authsvc.NewService(logger, users, jwtMgr, authCfg)
	userService := usersvc.NewService(logger, users, uploads)
	diaryService := diarysvc.NewService(logger, diaries)
	calendarService := calendarsvc.NewService(logger, marks)
	stickerService := stickersvc.NewService(logger, stickers, users, txm)
	quoteService := quotesvc.NewService(logger, quotes)

	handler := rest.NewRouter(rest.RouterDeps{
		Log:        logger,
		CORS:       config.CORSConfig{AllowedOrigins: "*"},
		Validator:  jwtMgr,
		Auth:       rest.NewAuthHandler(logger, authService),
		User:       rest.NewUserHandler(logger, userService, 1<<20),
		Diary:      rest.NewDiaryHandler(logger, diaryService),
		Calendar:   rest.NewCalendarHandler(logger, calendarService),
		Sticker:    rest.NewStickerHandler(logger, stickerService),
		Quote:      rest.NewQuoteHandler(logger, quoteService),
		Health:     rest.NewHealthHandler(pool, "e2e"),
		UploadsDir: uploads.Dir(),
	})

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
	}
}

// request performs a JSON request against the test server. token, when
// non-empty, is sent as a bearer token.
func request(t *testing.T, ts *testServer, method, path, token string, body any) *http.Response {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	return resp
}

// decode reads and closes the response body as a JSON object.
func decode(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

// signupAndLogin registers a fresh user and returns its id and access token.
func signupAndLogin(t *testing.T, ts *testServer, userID string) string {
	t.Helper()

	resp := request(t, ts, http.MethodPost, "/signup", "", map[string]string{
		"user_id":  userID,
		"name":     "Test " + userID,
		"password": "secret99",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = request(t, ts, http.MethodPost, "/login", "", map[string]string{
		"user_id":  userID,
		"password": "secret99",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode(t, resp)

	token, ok := body["token"].(string)
	require.True(t, ok, "expected token in login response")
	require.NotEmpty(t, token)
	return token
}

// seedSticker inserts one catalog sticker and returns its id.
func seedSticker(t *testing.T, ts *testServer, name string, price int64) int64 {
	t.Helper()

	var id int64
	err := ts.Pool.QueryRow(t.Context(),
		`INSERT INTO stickers (name, image_url, price) VALUES ($1, $2, $3) RETURNING sticker_id`,
		name, fmt.Sprintf("/assets/stickers/%s.png", name), price,
	).Scan(&id)
	require.NoError(t, err)
	return id
}
