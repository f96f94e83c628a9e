package golay

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Debounce window for editors that write a theme file in several bursts.
const themeDebounce = 50 * time.Millisecond

// ThemeReload reports one completed reload of a watched theme file.
type ThemeReload struct {
	Theme    *Theme
	Version  uint64 // engine spec table version after the reload
	Warnings []ThemeWarning
	Err      error // non-nil when the file could not be read or decoded
}

// ThemeWatcher watches a theme file and pushes every change into an Engine,
// so callers only have to re-run their resolution passes when a reload
// arrives on Reloads.
type ThemeWatcher struct {
	watcher *fsnotify.Watcher
	path    string
	engine  *Engine

	reloads chan ThemeReload
	done    chan struct{}
	once    sync.Once
}

// WatchTheme loads the theme file into the engine and keeps it in sync with
// changes on disk. The initial load must succeed; later failures are
// reported on Reloads without touching the engine's last good table.
func WatchTheme(path string, engine *Engine) (*ThemeWatcher, error) {
	theme, table, warnings, err := LoadThemeFile(path)
	if err != nil {
		return nil, err
	}
	engine.SetBaseSize(theme.BaseSize)
	engine.SetProps(table)

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Watch the directory, not the file: editors that replace the file on
	// save would otherwise drop the watch.
	if err := fsWatcher.Add(filepath.Dir(path)); err != nil {
		fsWatcher.Close()
		return nil, err
	}

	w := &ThemeWatcher{
		watcher: fsWatcher,
		path:    filepath.Clean(path),
		engine:  engine,
		reloads: make(chan ThemeReload, 8),
		done:    make(chan struct{}),
	}

	w.reloads <- ThemeReload{
		Theme:    theme,
		Version:  engine.Version(),
		Warnings: warnings,
	}

	go w.watch()
	return w, nil
}

// Reloads delivers one ThemeReload per applied (or failed) reload, starting
// with the initial load. The channel closes when the watcher is closed.
func (w *ThemeWatcher) Reloads() <-chan ThemeReload {
	return w.reloads
}

// Close stops watching and closes the Reloads channel.
func (w *ThemeWatcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.watcher.Close()
	})
	return err
}

func (w *ThemeWatcher) watch() {
	defer close(w.reloads)

	var debounce *time.Timer
	var pending <-chan time.Time

	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if debounce == nil {
				debounce = time.NewTimer(themeDebounce)
			} else {
				debounce.Reset(themeDebounce)
			}
			pending = debounce.C

		case <-pending:
			pending = nil
			w.reload()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.reloads <- ThemeReload{Err: err}:
			case <-w.done:
				return
			}
		}
	}
}

func (w *ThemeWatcher) reload() {
	theme, table, warnings, err := LoadThemeFile(w.path)
	reload := ThemeReload{Theme: theme, Warnings: warnings, Err: err}
	if err == nil {
		w.engine.SetBaseSize(theme.BaseSize)
		w.engine.SetProps(table)
		reload.Version = w.engine.Version()
		debugf("watcher: theme %s reloaded (v%d, %d warnings)", w.path, reload.Version, len(warnings))
	} else {
		debugf("watcher: theme %s reload failed: %v", w.path, err)
	}

	select {
	case w.reloads <- reload:
	case <-w.done:
	}
}
