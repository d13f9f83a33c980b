package cli

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/Tharun-raj-u/speakout/internal/client/api"
	"github.com/Tharun-raj-u/speakout/internal/client/device"
	"github.com/Tharun-raj-u/speakout/internal/client/models"
	"github.com/Tharun-raj-u/speakout/internal/client/services"
	"github.com/Tharun-raj-u/speakout/internal/client/session"
	"github.com/Tharun-raj-u/speakout/internal/client/storage"
	"github.com/Tharun-raj-u/speakout/internal/logging"
)

type nopLogger struct{}

func (nopLogger) Debug(context.Context, string, ...any) {}
func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}
func (nopLogger) With(...any) logging.Logger            { return nopLogger{} }

// newViewApp wires an App against baseURL with scripted terminal input.
func newViewApp(t *testing.T, baseURL, input string) (*App, *bytes.Buffer, *session.Store) {
	t.Helper()

	db, err := storage.InitDatabase(context.Background(), filepath.Join(t.TempDir(), "metadata.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	store := session.NewStore(db)
	guard := session.NewGuard(store)
	client := api.NewHTTPClient(baseURL, store, nil)

	var out bytes.Buffer
	return &App{
		log:    nopLogger{},
		db:     db,
		guard:  guard,
		client: client,
		auth:   services.NewAuthService(client, guard),
		device: device.NewResolverWith(),
		reader: bufio.NewReader(strings.NewReader(input)),
		out:    &out,
	}, &out, store
}

func loginToken(t *testing.T) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	s, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func stubPrompts(t *testing.T, email, password string) {
	t.Helper()
	origText, origPw := getSimpleText, getPassword
	getSimpleText = func(r *bufio.Reader, prompt string, w io.Writer) (string, error) {
		return email, nil
	}
	getPassword = func(w io.Writer) ([]byte, error) {
		return []byte(password), nil
	}
	t.Cleanup(func() {
		getSimpleText, getPassword = origText, origPw
	})
}

func TestLoginViewExit(t *testing.T) {
	app, out, _ := newViewApp(t, "http://localhost:0", "exit\n")
	require.Equal(t, session.Route(""), app.loginView(context.Background()))
	require.Contains(t, out.String(), "log in")
}

func TestLoginViewSuccessRedirectsByRole(t *testing.T) {
	token := loginToken(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/login", r.URL.Path)
		json.NewEncoder(w).Encode(api.AuthResult{Token: token, Role: "ROLE_ADMIN"})
	}))
	defer srv.Close()

	app, out, store := newViewApp(t, srv.URL, "login\n")
	stubPrompts(t, "alice@corp", "secret")

	next := app.loginView(context.Background())
	require.Equal(t, session.RouteAdmin, next)
	require.Contains(t, out.String(), "Login successful.")
	require.Equal(t, token, store.Token(context.Background()))
}

func TestLoginViewBadCredentialsStays(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	// A failed login keeps the prompt; the second command exits.
	app, out, store := newViewApp(t, srv.URL, "login\nexit\n")
	stubPrompts(t, "alice@corp", "wrong")

	next := app.loginView(context.Background())
	require.Equal(t, session.Route(""), next)
	require.NotContains(t, out.String(), "Login successful.")
	require.Empty(t, store.Token(context.Background()))
}

func TestBrowseViewRendersAndExits(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/suggestions", r.URL.Path)
		json.NewEncoder(w).Encode(models.Page{
			Content: []models.Suggestion{
				{ID: 1, Title: "Better coffee", Status: models.StatusOpen, SubmitterName: "Alice"},
			},
			TotalPages: 1,
		})
	}))
	defer srv.Close()

	app, out, _ := newViewApp(t, srv.URL, "exit\n")
	sess := &session.Session{Token: "t", Role: session.RoleUser}

	next := app.browseView(context.Background(), sess)
	require.Equal(t, session.Route(""), next)
	require.Contains(t, out.String(), "Better coffee")
	require.Contains(t, out.String(), "Page 1 of 1")
}

func TestBrowseViewUnauthorizedRedirects(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	app, out, store := newViewApp(t, srv.URL, "")
	require.NoError(t, store.Save(context.Background(), "stale-token", session.RoleUser))

	next := app.browseView(context.Background(), &session.Session{Token: "stale-token", Role: session.RoleUser})
	require.Equal(t, session.RouteEntry, next)
	require.Contains(t, out.String(), "session has expired")
	require.Empty(t, store.Token(context.Background()))
}

func TestBrowseViewPageJump(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page := r.URL.Query().Get("page")
		json.NewEncoder(w).Encode(models.Page{
			Content: []models.Suggestion{
				{ID: 1, Title: "Idea on page " + page, Status: models.StatusOpen},
			},
			TotalPages: 3,
		})
	}))
	defer srv.Close()

	app, out, _ := newViewApp(t, srv.URL, "page 3\nexit\n")
	sess := &session.Session{Token: "t", Role: session.RoleUser}

	app.browseView(context.Background(), sess)
	require.Contains(t, out.String(), "Idea on page 2")
	require.Contains(t, out.String(), "Page 3 of 3")
}

func TestBrowseViewVoteReloadsPage(t *testing.T) {
	var toggles int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/votes/suggestion/"):
			toggles++
			json.NewEncoder(w).Encode(api.ToggleResult{Success: true})
		default:
			votes := int64(3)
			if toggles > 0 {
				votes = 4
			}
			json.NewEncoder(w).Encode(models.Page{
				Content: []models.Suggestion{
					{ID: 9, Title: "Quiet room", Status: models.StatusOpen, VoteCount: votes},
				},
				TotalPages: 1,
			})
		}
	}))
	defer srv.Close()

	app, out, _ := newViewApp(t, srv.URL, "vote 1\nexit\n")
	sess := &session.Session{Token: "t", Role: session.RoleUser}

	app.browseView(context.Background(), sess)
	require.Equal(t, 1, toggles)
	require.Contains(t, out.String(), "votes 4")
}
