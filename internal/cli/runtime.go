package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/manifoldco/promptui"

	"github.com/faizmokh/productify/internal/config"
	"github.com/faizmokh/productify/internal/dashboard"
	"github.com/faizmokh/productify/internal/feeds"
	"github.com/faizmokh/productify/internal/files"
	"github.com/faizmokh/productify/internal/notify"
	"github.com/faizmokh/productify/internal/observability"
	"github.com/faizmokh/productify/internal/storage"
	"github.com/faizmokh/productify/internal/sysclip"
)

// Capabilities that touch the desktop. Tests swap them out.
var (
	newClipboard = func() dashboard.Clipboard { return sysclip.New() }
	newNotifier  = func() dashboard.Notifier { return notify.NewDesktop() }
	confirm      = promptConfirm
)

// runtime is everything a command needs once config and storage are open.
type runtime struct {
	cfg        config.Config
	logger     *slog.Logger
	controller *dashboard.Controller
	feeds      *feeds.Client

	closers []func() error
}

// openRuntime loads config, opens the log file and the storage backend, and
// rehydrates the dashboard. ticker may be nil for commands that never run
// the focus timer.
func openRuntime(manager *files.Manager, ticker dashboard.Ticker) (*runtime, error) {
	cfg, err := config.Load(manager.ConfigPath())
	if err != nil {
		return nil, err
	}
	if err := manager.EnsureDirs(); err != nil {
		return nil, err
	}

	rt := &runtime{cfg: cfg}

	logFile, err := observability.OpenFile(manager.LogPath(cfg.Log.File))
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	rt.closers = append(rt.closers, logFile.Close)
	rt.logger = observability.NewLogger(logFile, cfg.Log.Level)

	substrate, closeStorage, err := storage.Open(cfg.Storage.Backend, manager, cfg.Storage)
	if err != nil {
		_ = rt.Close()
		return nil, err
	}
	rt.closers = append(rt.closers, closeStorage)

	opts := dashboard.Options{
		Clipboard:     newClipboard(),
		Ticker:        ticker,
		PresetMinutes: cfg.Timer.Preset,
		Logger:        rt.logger,
	}
	if cfg.Notify.Enabled {
		opts.Notifier = newNotifier()
	}
	rt.controller = dashboard.NewController(storage.NewAdapter(substrate, rt.logger), opts)
	if err := rt.controller.Load(); err != nil {
		_ = rt.Close()
		return nil, fmt.Errorf("load dashboard: %w", err)
	}
	rt.feeds = feeds.NewClient(cfg.Feeds, rt.logger)

	rt.logger.Debug("runtime ready", "home", manager.BasePath(), "backend", cfg.Storage.Backend)
	return rt, nil
}

// Close releases storage and the log file, newest first.
func (rt *runtime) Close() error {
	var errs []error
	for i := len(rt.closers) - 1; i >= 0; i-- {
		errs = append(errs, rt.closers[i]())
	}
	rt.closers = nil
	return errors.Join(errs...)
}

// handle runs cmd and folds the notice into the returned error.
func (rt *runtime) handle(cmd dashboard.Command) (dashboard.Notice, error) {
	notice, err := rt.controller.Handle(cmd)
	if err == nil {
		return notice, nil
	}
	if errors.Is(err, dashboard.ErrIndexOutOfRange) {
		return notice, fmt.Errorf("no item at index %d", cmd.Index+1)
	}
	if notice.Quiet() {
		return notice, err
	}
	return notice, fmt.Errorf("%s: %w", notice.Message, err)
}

func promptConfirm(in io.Reader, out io.Writer, label string) bool {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
		Stdin:     io.NopCloser(in),
		Stdout:    nopWriteCloser{out},
	}
	_, err := prompt.Run()
	return err == nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
