package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/ratemystore/internal/client/client"
	"github.com/dmitrijs2005/ratemystore/internal/client/config"
	"github.com/dmitrijs2005/ratemystore/internal/client/models"
	"github.com/dmitrijs2005/ratemystore/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/ratemystore/internal/client/services"
	"github.com/dmitrijs2005/ratemystore/internal/client/storage"
	"github.com/dmitrijs2005/ratemystore/internal/client/validation"
	"github.com/dmitrijs2005/ratemystore/internal/client/view"
	"github.com/dmitrijs2005/ratemystore/internal/logging"

	_ "modernc.org/sqlite"
)

// usersGroup is the sort group of the single admin user table. Owner
// screens use one group per store card instead.
const usersGroup = "users"

type App struct {
	config  *config.Config
	log     logging.Logger
	api     client.Client
	session *services.SessionService
	vld     *validation.AccountValidator

	users  *view.Collection[models.User]
	stores *view.Collection[models.Store]

	db     *sql.DB
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.Open(ctx, cfg.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err.Error())
		return nil, err
	}

	meta := metadata.NewSQLiteRepository(db)
	api := client.NewHTTPClient(cfg.APIBaseURL, cfg.RequestTimeout, services.TokenSource(meta), log.With("component", "api"))
	session := services.NewSessionService(api, meta, log.With("component", "session"))

	a := &App{
		config:  cfg,
		log:     log,
		api:     api,
		session: session,
		vld:     validation.NewAccountValidator(),
		db:      db,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}

	a.users = view.NewCollection(
		func(ctx context.Context, filters map[string]string) ([]models.User, error) {
			return api.ListUsers(ctx, filters)
		},
		userValue,
		"name", "email", "address", "role",
	)
	a.stores = view.NewCollection(
		func(ctx context.Context, _ map[string]string) ([]models.Store, error) {
			return api.OwnerStoreRatings(ctx)
		},
		storeValue,
	)

	// Screens rendering identity-dependent data go back to their neutral
	// state on every session transition.
	session.Subscribe(func() {
		a.users.Reset()
		a.stores.Reset()
	})

	return a, nil
}

// Run restores any persisted session and enters the REPL. It blocks until
// the user exits or the input stream ends.
func (a *App) Run(ctx context.Context) {
	if err := a.session.Restore(ctx); err != nil {
		a.log.Warn(ctx, "session restore failed", "error", err.Error())
	}

	printlnFn("Welcome to RateMyStore CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}

// Close releases the local database handle.
func (a *App) Close() error {
	return a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) role() models.Role {
	user, ok := a.session.CurrentUser()
	if !ok {
		return ""
	}
	return user.Role
}

func (a *App) getStatus() string {
	user, ok := a.session.CurrentUser()
	if !ok {
		return ""
	}
	return fmt.Sprintf("(%s %s)", user.Email, user.Role)
}
