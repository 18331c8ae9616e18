package commands

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDebounce collapses bursts of events from editors and build tools.
const watchDebounce = 100 * time.Millisecond

// watchLint runs l once, then again after every change below its inputs,
// until ctx is cancelled. Lint issues do not stop the loop.
func watchLint(ctx context.Context, l *lintRun) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	roots := l.paths
	if len(roots) == 0 {
		roots = []string{"."}
	}
	for _, root := range roots {
		if err := watchPath(watcher, root); err != nil {
			l.logger.Error("failed to watch path", slog.String("path", root), slog.Any("error", err))
		}
	}

	rerun := func() {
		if err := l.once(ctx); err != nil && !IsLintIssues(err) {
			l.renderer.Error(err.Error())
		}
		l.renderer.Println(l.renderer.Styles().Muted.Render("Watching for changes..."))
	}
	rerun()

	trigger := make(chan struct{}, 1)
	var debounceTimer *time.Timer
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = watchPath(watcher, event.Name)
				}
			}

			l.logger.Debug("input changed", slog.String("file", event.Name), slog.String("op", event.Op.String()))
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(watchDebounce, func() {
				select {
				case trigger <- struct{}{}:
				default:
				}
			})

		case <-trigger:
			rerun()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			l.logger.Error("watcher error", slog.Any("error", err))
		}
	}
}

// watchPath watches a file's directory, or a directory and all of its
// subdirectories.
func watchPath(watcher *fsnotify.Watcher, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return watcher.Add(filepath.Dir(path))
	}
	return filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == "node_modules" || d.Name() == ".git" {
				return filepath.SkipDir
			}
			return watcher.Add(p)
		}
		return nil
	})
}
