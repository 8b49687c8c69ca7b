// Package watch translates file-system events into analysis invalidations.
// Events whose content hash is unchanged are suppressed so editors that
// rewrite files without changing them do not trigger re-analysis.
package watch

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/viant/webcomp/analysis"
	"github.com/viant/webcomp/model"
)

// Watcher watches a directory tree and feeds changed files into an
// analyzer.
type Watcher struct {
	analyzer *analysis.Analyzer
	root     string
	logger   *slog.Logger
	hashes   map[string]uint64
	// OnChange is invoked with the new snapshot after each invalidation.
	OnChange func(*analysis.Context)
}

// New creates a watcher over root feeding the analyzer.
func New(analyzer *analysis.Analyzer, root string, logger *slog.Logger) *Watcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{
		analyzer: analyzer,
		root:     root,
		logger:   logger,
		hashes:   map[string]uint64{},
	}
}

// Run watches until the context is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	err = filepath.Walk(w.root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
	if err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			w.handle(event)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", slog.Any("error", err))
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return
	}
	if !w.Changed(event.Name) {
		return
	}
	w.logger.Info("file changed", slog.String("path", event.Name))
	snapshot := w.analyzer.FilesChanged([]string{event.Name})
	if w.OnChange != nil {
		w.OnChange(snapshot)
	}
}

// Changed records the file's content hash and reports whether it differs
// from the previously recorded one. Unreadable (deleted) files always
// count as changed.
func (w *Watcher) Changed(path string) bool {
	content, err := os.ReadFile(path)
	if err != nil {
		delete(w.hashes, path)
		return true
	}
	hash, err := model.Hash(content)
	if err != nil {
		return true
	}
	if previous, ok := w.hashes[path]; ok && previous == hash {
		return false
	}
	w.hashes[path] = hash
	return true
}
