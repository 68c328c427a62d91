package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/jobdeck/jobdeck/internal/client/api"
	"github.com/jobdeck/jobdeck/internal/client/auth"
	"github.com/jobdeck/jobdeck/internal/client/config"
	"github.com/jobdeck/jobdeck/internal/client/guard"
	"github.com/jobdeck/jobdeck/internal/client/models"
	"github.com/jobdeck/jobdeck/internal/client/session"
	"github.com/jobdeck/jobdeck/internal/logging"
)

// App ties the client pieces together behind the REPL commands.
type App struct {
	cfg    *config.Config
	log    logging.Logger
	db     *sql.DB
	client *api.Client
	auth   *auth.Coordinator

	reader *bufio.Reader
	out    io.Writer
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	if log == nil {
		log = logging.NewNop()
	}

	db, err := session.InitDatabase(ctx, cfg.SessionDBPath)
	if err != nil {
		log.Error(ctx, "failed to initialize session database", "path", cfg.SessionDBPath, "error", err)
		return nil, err
	}

	// The client reads the token through the coordinator, the coordinator
	// authenticates through the client. Break the cycle with a late binding.
	var coord *auth.Coordinator
	apiClient := api.NewClient(cfg.ServerBaseURL, func() string { return coord.Token() })
	coord = auth.NewCoordinator(apiClient, session.NewSQLiteStore(db), log)

	return &App{
		cfg:    cfg,
		log:    log,
		db:     db,
		client: apiClient,
		auth:   coord,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

// Run restores any persisted session and hands control to the REPL. It
// blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	if err := a.auth.Hydrate(ctx); err != nil {
		a.log.Warn(ctx, "failed to restore session", "error", err)
	}

	fmt.Fprintln(a.out, "Welcome to jobdeck (type 'help' for commands)")
	if user, ok := a.auth.CurrentUser(); ok {
		fmt.Fprintf(a.out, "Signed in as %s (%s)\n", user.Name, user.Role)
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) isLoggedIn() bool {
	return a.auth.State() == auth.StateAuthenticated
}

func (a *App) currentRole() models.Role {
	user, ok := a.auth.CurrentUser()
	if !ok {
		return ""
	}
	return user.Role
}

func (a *App) getStatus() string {
	user, ok := a.auth.CurrentUser()
	if !ok {
		return ""
	}
	return fmt.Sprintf("(%s %s)", user.Email, user.Role)
}

// guardView enforces access to a protected screen. A signed-out user is sent
// through the login flow first, matching the browser's redirect, then the
// check runs again against the fresh session.
func (a *App) guardView(ctx context.Context, view guard.View) bool {
	switch guard.Check(a.auth.State(), a.currentRole(), view) {
	case guard.Allow:
		return true
	case guard.RedirectLogin:
		fmt.Fprintln(a.out, "Please sign in first.")
		a.Login(ctx)
		return guard.Check(a.auth.State(), a.currentRole(), view) == guard.Allow
	default:
		fmt.Fprintln(a.out, "You do not have access to this screen.")
		return false
	}
}
