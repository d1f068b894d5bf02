package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"
	"sync"
	"time"

	"github.com/mzaikin/boardroom/internal/client/config"
	"github.com/mzaikin/boardroom/internal/client/gateway"
	"github.com/mzaikin/boardroom/internal/client/grpcgateway"
	"github.com/mzaikin/boardroom/internal/client/localdb"
	"github.com/mzaikin/boardroom/internal/client/stores"
	"github.com/mzaikin/boardroom/internal/logging"

	_ "modernc.org/sqlite"
)

// Mode reflects the last known reachability of the backend.
type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// App owns the wiring of one client process: configuration, the local
// database, the backend gateway, and, after a successful login, the entity
// stores and the reminder scheduler.
type App struct {
	config *config.Config
	log    logging.Logger
	gw     gateway.Gateway
	db     *sql.DB
	repos  *localdb.Repositories
	reader *bufio.Reader

	modeMu sync.Mutex
	mode   Mode

	// Session-scoped state, populated by Login and torn down by Logout.
	meetings      *stores.MeetingStore
	tasks         *stores.TaskStore
	notifications *stores.NotificationStore
	directory     *stores.Directory
	recorder      *stores.Recorder
	stopScheduler context.CancelFunc
	session       gateway.Session
}

// NewApp opens the local database and dials the backend. Nothing session
// scoped is created yet; that happens at login.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, repos, err := localdb.Init(ctx, cfg.LocalDBPath)
	if err != nil {
		log.Error(ctx, "initializing local database", "error", err)
		return nil, err
	}

	gw, err := grpcgateway.New(cfg.ServerEndpointAddr, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &App{
		config: cfg,
		log:    log,
		gw:     gw,
		db:     db,
		repos:  repos,
		reader: bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.session.Valid()
}

func (a *App) setMode(mode Mode) {
	a.modeMu.Lock()
	defer a.modeMu.Unlock()
	if a.mode != mode {
		a.mode = mode
		a.log.Info(context.Background(), "switched mode", "mode", string(mode))
	}
}

func (a *App) getMode() Mode {
	a.modeMu.Lock()
	defer a.modeMu.Unlock()
	return a.mode
}

// StartOnlineStatusWatcher probes the backend on the configured interval and
// flips the mode shown in the prompt. It blocks until ctx is cancelled.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			err := a.gw.Ping(pingCtx)
			cancel()

			if err != nil {
				a.setMode(ModeOffline)
			} else {
				a.setMode(ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}

// activateSession builds the stores for the given session, loads them, opens
// their change-feed subscriptions, and starts the reminder scheduler.
func (a *App) activateSession(ctx context.Context, session gateway.Session) error {
	a.meetings = stores.NewMeetingStore(a.gw, session, a.log)
	a.tasks = stores.NewTaskStore(a.gw, session, a.log)
	a.notifications = stores.NewNotificationStore(a.gw, session, a.log)
	a.directory = stores.NewDirectory(a.gw, session, a.log)
	a.recorder = stores.NewRecorder(a.gw, session.UserID, a.log)

	for _, start := range []func(context.Context) error{
		a.meetings.Start,
		a.tasks.Start,
		a.notifications.Start,
		a.directory.Start,
	} {
		if err := start(ctx); err != nil {
			a.deactivateSession()
			return err
		}
	}

	scheduler := stores.NewScheduler(a.meetings, a.notifications, a.repos.Reminders, session.UserID, a.log)
	scheduler.Configure(a.config.ReminderWindow, a.config.ReminderInterval)

	schedulerCtx, cancel := context.WithCancel(ctx)
	a.stopScheduler = cancel
	go scheduler.Run(schedulerCtx)

	a.session = session
	return nil
}

// deactivateSession tears down everything activateSession built. Safe to call
// with a partially built session.
func (a *App) deactivateSession() {
	if a.stopScheduler != nil {
		a.stopScheduler()
		a.stopScheduler = nil
	}
	if a.recorder != nil {
		a.recorder.Wait()
		a.recorder = nil
	}
	if a.meetings != nil {
		a.meetings.Close()
		a.meetings = nil
	}
	if a.tasks != nil {
		a.tasks.Close()
		a.tasks = nil
	}
	if a.notifications != nil {
		a.notifications.Close()
		a.notifications = nil
	}
	if a.directory != nil {
		a.directory.Close()
		a.directory = nil
	}
	a.session = gateway.Session{}
}

// Run starts the REPL and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer func() {
		a.deactivateSession()
		_ = a.gw.Close()
		_ = a.db.Close()
	}()
	a.Root(ctx)
}
