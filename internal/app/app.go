package app

import (
	"runtime/debug"
	"strings"

	"github.com/dshills/tuikit/internal/config"
	"github.com/dshills/tuikit/internal/geometry"
	"github.com/dshills/tuikit/internal/input/key"
	"github.com/dshills/tuikit/internal/renderer/backend"
	"github.com/dshills/tuikit/internal/theme"
	"github.com/dshills/tuikit/internal/ui"
)

// Options configures an Application.
type Options struct {
	// Config supplies field width and navigation key aliases.
	Config config.Config

	// Theme provides the three widget styles. The zero value selects the
	// built-in theme.
	Theme theme.Theme

	// Logger receives frame loop diagnostics. Nil disables logging.
	Logger *Logger

	// Origin is the position of the root layout.
	Origin geometry.Point

	// QuitKeys lists characters that exit the frame loop when no widget
	// has captured input. Empty disables character quit.
	QuitKeys string
}

// Application owns the frame loop: it polls the backend for events, decodes
// them into intents, feeds the interaction context, and lets the caller's
// build function re-declare the interface each frame.
type Application struct {
	opts    Options
	logger  *Logger
	backend *backend.BufferedBackend
	ctx     *ui.Context
	decoder key.Decoder
	running bool
	quit    bool
}

// New creates an application from options. The backend is created lazily by
// Run unless SetBackend is called first.
func New(opts Options) *Application {
	if opts.Theme == (theme.Theme{}) {
		opts.Theme = theme.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = NullLogger
	}

	next := opts.Config.NextKeys
	if next == "" {
		next = "s"
	}
	prev := opts.Config.PrevKeys
	if prev == "" {
		prev = "w"
	}

	return &Application{
		opts:   opts,
		logger: logger,
		decoder: key.Decoder{
			NextRunes: []rune(next),
			PrevRunes: []rune(prev),
		},
	}
}

// SetBackend installs the terminal backend, wrapping it in a diffing screen
// buffer. Call before Run to substitute a test backend.
func (app *Application) SetBackend(b backend.Backend) {
	app.backend = backend.NewBufferedBackend(b)
	app.ctx = ui.New(app.backend, app.opts.Theme, app.opts.Config.FieldWidth)
}

// Context returns the interaction context. Nil until a backend is installed.
func (app *Application) Context() *ui.Context {
	return app.ctx
}

// Logger returns the application's logger.
func (app *Application) Logger() *Logger {
	return app.logger
}

// Quit asks the frame loop to exit after the current frame renders.
func (app *Application) Quit() {
	app.quit = true
}

// Interrupt posts an interrupt event to the frame loop. Safe to call from
// other goroutines, such as a signal handler.
func (app *Application) Interrupt() {
	if app.backend != nil {
		app.backend.PostEvent(backend.Event{Type: backend.EventInterrupt})
	}
}

// Run drives the frame loop until quit. Each iteration clears the buffer,
// lets build re-declare the interface, flushes the diff to the terminal, and
// blocks on the next event. Run returns ErrQuit on every clean shutdown
// path; panics from build reach the caller as RecoveredPanicError after the
// terminal is restored.
func (app *Application) Run(build func(*ui.Context)) (err error) {
	if app.running {
		return ErrAlreadyRunning
	}

	if app.backend == nil {
		term, terr := backend.NewTerminal()
		if terr != nil {
			return NewComponentError("backend", "create", terr)
		}
		app.SetBackend(term)
	}

	if ierr := app.backend.Init(); ierr != nil {
		return NewComponentError("backend", "init", ierr)
	}
	defer app.backend.Shutdown()

	defer func() {
		if r := recover(); r != nil {
			err = NewRecoveredPanicError(r, string(debug.Stack()))
			app.logger.Error("frame loop panic: %v", r)
		}
	}()

	app.running = true
	defer func() { app.running = false }()

	app.logger.Info("frame loop started")

	for {
		app.backend.Clear()
		app.ctx.Begin(app.opts.Origin)
		build(app.ctx)
		app.ctx.End()
		app.backend.HideCursor()
		app.backend.Show()

		if app.quit {
			app.logger.Info("frame loop stopped")
			return ErrQuit
		}

		ev := app.backend.PollEvent()
		switch ev.Type {
		case backend.EventInterrupt:
			app.logger.Info("interrupted")
			return ErrQuit

		case backend.EventResize:
			app.backend.Buffer().Resize(ev.Width, ev.Height)
			app.backend.Buffer().MarkFullRedraw()
			app.logger.Debug("resized to %dx%d", ev.Width, ev.Height)

		case backend.EventKey:
			kev, ok := adaptKeyEvent(ev)
			if !ok {
				continue
			}
			captured := app.ctx.Captured()
			intent := app.decoder.Decode(kev, captured)
			if intent.Kind == key.IntentChar && !captured &&
				strings.ContainsRune(app.opts.QuitKeys, intent.Rune) {
				app.logger.Info("quit key pressed")
				return ErrQuit
			}
			app.ctx.Feed(intent)
		}
	}
}
