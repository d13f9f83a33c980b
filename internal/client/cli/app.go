package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	_ "modernc.org/sqlite"

	"github.com/Tharun-raj-u/speakout/internal/client/api"
	"github.com/Tharun-raj-u/speakout/internal/client/config"
	"github.com/Tharun-raj-u/speakout/internal/client/device"
	"github.com/Tharun-raj-u/speakout/internal/client/services"
	"github.com/Tharun-raj-u/speakout/internal/client/session"
	"github.com/Tharun-raj-u/speakout/internal/client/storage"
	"github.com/Tharun-raj-u/speakout/internal/logging"
)

// Page sizes per view, matching the service's expectations.
const (
	userPageSize  = 10
	adminPageSize = 6
)

// App wires the client together: session guard, API client, the per-view
// stores and the terminal I/O.
type App struct {
	config *config.Config
	log    logging.Logger
	db     *sql.DB

	guard  *session.Guard
	client api.Client
	auth   *services.AuthService
	device *device.Resolver

	reader *bufio.Reader
	out    io.Writer
}

// NewApp builds the application from configuration. The returned App owns
// the metadata database; call Close when done.
func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := storage.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing metadata database", "error", err)
		return nil, err
	}

	meta := storage.NewSQLiteRepository(db)
	store := session.NewStore(db)
	guard := session.NewGuard(store)
	client := api.NewHTTPClient(c.ServerBaseURL, store, nil)

	return &App{
		config: c,
		log:    log,
		db:     db,
		guard:  guard,
		client: client,
		auth:   services.NewAuthService(client, guard),
		device: device.NewResolver(meta),
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

// Close releases the metadata database.
func (a *App) Close() error {
	return a.db.Close()
}

// Run drives the navigation loop. Every view entry resolves the session
// first; an expired or undecodable token clears state and lands back on
// the login view, never as an inline error.
func (a *App) Run(ctx context.Context) {
	route := session.RouteEntry

	for route != "" {
		sess, err := a.guard.Resolve(ctx)
		if err != nil {
			fmt.Fprintln(a.out, "Your session has expired, please log in again.")
			route = session.RouteEntry
			sess = nil
		}

		switch session.Admit(route, sess) {
		case session.Allow:
			route = a.render(ctx, route, sess)
		case session.ToLogin:
			route = session.RouteEntry
		case session.ToUserHome:
			route = a.render(ctx, session.RouteUser, sess)
		case session.ToAdminHome:
			route = a.render(ctx, session.RouteAdmin, sess)
		case session.NotFound:
			fmt.Fprintf(a.out, "Unknown view %q.\n", route)
			route = session.RouteEntry
		}
	}

	fmt.Fprintln(a.out, "Bye!")
}

// render dispatches to the view behind an admitted route and returns the
// next route ("" exits).
func (a *App) render(ctx context.Context, route session.Route, sess *session.Session) session.Route {
	switch route {
	case session.RouteEntry:
		return a.loginView(ctx)
	case session.RouteUser:
		return a.browseView(ctx, sess)
	case session.RouteSubmit:
		return a.submitView(ctx)
	case session.RouteMine:
		return a.mineView(ctx)
	case session.RouteAdmin:
		return a.adminDashboardView(ctx)
	case session.RouteManage:
		return a.manageView(ctx)
	case session.RouteDeleted:
		return a.deletedView(ctx)
	case session.RouteRegister:
		return a.registerView(ctx)
	default:
		fmt.Fprintf(a.out, "Unknown view %q.\n", route)
		return session.RouteEntry
	}
}

// logout tears the session down and returns to the entry view.
func (a *App) logout(ctx context.Context) session.Route {
	if err := a.auth.Logout(ctx); err != nil {
		a.log.Error(ctx, "logout failed", "error", err)
	}
	return session.RouteEntry
}
