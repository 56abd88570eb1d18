package websocket

import (
	"context"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports changes anywhere below a directory. fsnotify watches a
// single directory, so every subdirectory gets its own watch, including the
// ones created later.
type Watcher struct {
	root     string
	debounce time.Duration
	logger   *log.Logger
	fw       *fsnotify.Watcher
}

// NewWatcher watches the tree under root. Bursts of events closer than
// debounce are reported once.
func NewWatcher(root string, debounce time.Duration, logger *log.Logger) (*Watcher, error) {
	if logger == nil {
		logger = log.Default()
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{root: root, debounce: debounce, logger: logger, fw: fw}
	if err := w.addTree(root); err != nil {
		fw.Close()
		return nil, err
	}
	return w, nil
}

// Watch calls onChange after each burst of changes, until ctx is done.
// The watcher is closed on return.
func (w *Watcher) Watch(ctx context.Context, onChange func()) {
	defer w.fw.Close()

	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if ev.Op == fsnotify.Chmod || hidden(w.root, ev.Name) {
				continue
			}
			if ev.Has(fsnotify.Create) {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					if err := w.addTree(ev.Name); err != nil {
						w.logger.Println(err)
					}
				}
			}
			fire = time.After(w.debounce)
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.logger.Println(err)
		case <-fire:
			fire = nil
			onChange()
		}
	}
}

// addTree adds a watch for dir and every visible directory below it.
func (w *Watcher) addTree(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if hidden(w.root, path) {
			return filepath.SkipDir
		}
		return w.fw.Add(path)
	})
}

// hidden reports whether path lies in a dot directory or is a dot file
// below root.
func hidden(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." {
		return false
	}
	for _, part := range strings.Split(rel, string(filepath.Separator)) {
		if strings.HasPrefix(part, ".") {
			return true
		}
	}
	return false
}
