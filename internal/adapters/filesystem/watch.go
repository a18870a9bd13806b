package filesystem

import (
	"fmt"
	"os"
	"strings"

	"github.com/fsnotify/fsnotify"

	"encyclopedia/internal/domain"
)

// Watcher reports changes to the entries directory.
// Bursts of events are coalesced into a single pending notification.
type Watcher struct {
	watcher *fsnotify.Watcher
	changes chan struct{}
	done    chan struct{}
	store   *Store
}

// Watch starts watching the entries directory for added, removed, or
// rewritten entries. Close the watcher to stop it.
func (s *Store) Watch() (*Watcher, error) {
	if err := os.MkdirAll(s.dir, dirPerms); err != nil {
		return nil, fmt.Errorf("failed to create entries directory: %w", err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fw.Add(s.dir); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", s.dir, err)
	}

	w := &Watcher{
		watcher: fw,
		changes: make(chan struct{}, 1),
		done:    make(chan struct{}),
		store:   s,
	}
	go w.run()
	return w, nil
}

// Changes returns a channel that receives a value after entries change.
// It is closed when the watcher stops.
func (w *Watcher) Changes() <-chan struct{} {
	return w.changes
}

// Close stops the watcher
func (w *Watcher) Close() error {
	err := w.watcher.Close()
	<-w.done
	return err
}

func (w *Watcher) run() {
	defer close(w.done)
	defer close(w.changes)

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !isEntryEvent(event) {
				continue
			}
			w.store.logger.Debug("entries changed", "file", event.Name, "op", event.Op.String())
			select {
			case w.changes <- struct{}{}:
			default:
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.store.logger.Warn("watch error", "error", err)
		}
	}
}

// isEntryEvent filters out chmods and atomic-write temp files
func isEntryEvent(event fsnotify.Event) bool {
	if event.Op == fsnotify.Chmod {
		return false
	}
	return strings.HasSuffix(event.Name, domain.EntryExt)
}
