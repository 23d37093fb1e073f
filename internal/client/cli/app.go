package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"os"

	"custdesk/internal/client/api"
	"custdesk/internal/client/config"
	"custdesk/internal/client/credstore"
	"custdesk/internal/client/list"
	"custdesk/internal/client/session"
	"custdesk/internal/logging"
)

// App ties the CLI views to the session manager, the list controller, and the
// REST API client.
type App struct {
	config  *config.Config
	logger  logging.Logger
	api     api.Client
	session *session.Manager
	list    *list.Controller
	reader  *bufio.Reader
	out     io.Writer

	credDB *sql.DB
}

// NewApp wires the client stack: credential store (SQLite or in-memory),
// API client, session manager, and list controller. The stored session is
// hydrated before the first view.
func NewApp(ctx context.Context, cfg *config.Config, logger logging.Logger) (*App, error) {
	a := &App{
		config: cfg,
		logger: logger.With("module", "cli"),
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}

	var store credstore.Store
	if cfg.Ephemeral {
		store = credstore.NewMemoryStore()
	} else {
		db, err := credstore.InitDatabase(ctx, cfg.CredentialsPath)
		if err != nil {
			return nil, err
		}
		a.credDB = db
		store = credstore.NewSQLiteStore(db)
	}

	// the token source closes over the session manager constructed below
	a.api = api.NewHTTPClient(cfg.ServerBaseURL, cfg.RequestTimeout, func() string {
		if a.session == nil {
			return ""
		}
		return a.session.Token()
	})

	a.session = session.NewManager(a.api, store, logger)
	a.session.Hydrate(ctx)

	a.list = list.NewController(a.api.ListCustomers, cfg.DefaultPageSize)

	return a, nil
}

// Run starts the REPL and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.Close()
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner, a.out)
}

// Close releases the list controller and the credentials database.
func (a *App) Close() {
	a.list.Close()
	if a.credDB != nil {
		_ = a.credDB.Close()
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) status() string {
	if id := a.session.EmployeeID(); id != "" {
		return "(" + id + ")"
	}
	if a.session.IsAuthenticated() {
		return "(authenticated)"
	}
	return ""
}
