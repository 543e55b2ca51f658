package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/mkazantsev/jobdeck/internal/client/api"
	"github.com/mkazantsev/jobdeck/internal/client/config"
	"github.com/mkazantsev/jobdeck/internal/client/services"
	"github.com/mkazantsev/jobdeck/internal/client/session"
	"github.com/mkazantsev/jobdeck/internal/client/tokenstore"
	"github.com/mkazantsev/jobdeck/internal/logging"

	_ "modernc.org/sqlite"
)

// App wires the session manager, the job service, and the REPL together.
type App struct {
	config  *config.Config
	logger  logging.Logger
	session *session.Manager
	jobs    services.JobService
	reader  *bufio.Reader
	out     io.Writer
	view    View
}

func NewApp(cfg *config.Config) (*App, error) {
	ctx := context.Background()
	logger := logging.NewDefault(cfg.LogLevel)

	db, err := tokenstore.InitDatabase(ctx, cfg.DatabaseDSN)
	if err != nil {
		logger.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	apiClient := api.NewHTTPClient(cfg.APIBaseURL, cfg.RequestTimeout)
	store := tokenstore.NewSQLiteStore(db)

	sm := session.NewManager(apiClient, store, logger)
	js := services.NewJobService(apiClient)

	return &App{
		config:  cfg,
		logger:  logger,
		session: sm,
		jobs:    js,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
		view:    ViewHome,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	// hydrate a persisted session in the background; the guard keeps
	// protected views pending until the flag resolves
	go a.session.Reconcile(ctx)

	a.Root(ctx)
}
