package ui

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"log/slog"

	"github.com/fsnotify/fsnotify"

	"github.com/viviai0214/fanfare/internal/log"
)

// FileWatcher follows a single file and calls onChange when it is
// written or recreated
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	filePath string
	onChange func()
}

// NewFileWatcher creates a watcher for filePath
func NewFileWatcher(filePath string, onChange func()) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	// Watch the specific file
	err = watcher.Add(filePath)
	if err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch file: %w", err)
	}

	// Also watch the directory for file recreation events
	dir := filepath.Dir(filePath)
	if err := watcher.Add(dir); err != nil {
		// Non-fatal: some editors recreate files
		log.Warn("couldn't watch directory",
			slog.String("dir", dir),
			slog.String("error", err.Error()))
	}

	return &FileWatcher{
		watcher:  watcher,
		filePath: filePath,
		onChange: onChange,
	}, nil
}

// Start blocks, forwarding debounced change events until ctx is done
func (fw *FileWatcher) Start(ctx context.Context) {
	// Debounce timer to avoid multiple rapid events
	var debounceTimer *time.Timer
	const debounceDelay = 100 * time.Millisecond

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}

			// Check if the event is for our file
			if filepath.Clean(event.Name) == filepath.Clean(fw.filePath) {
				if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
					// Cancel existing timer
					if debounceTimer != nil {
						debounceTimer.Stop()
					}

					debounceTimer = time.AfterFunc(debounceDelay, fw.onChange)
				}
			}
		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			log.Error("watcher error", slog.String("error", err.Error()))
		}
	}
}

// Close releases the underlying watcher
func (fw *FileWatcher) Close() error {
	return fw.watcher.Close()
}
