package site

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/ziadkadry99/folio/internal/logging"
)

// Watcher calls OnChange once a burst of edits to the watched files and
// directories has settled for the debounce interval.
type Watcher struct {
	files    map[string]bool
	dirs     []string
	debounce time.Duration
	logger   logging.Logger
	onChange func()
}

// NewWatcher watches individual files (the content file, the template)
// and whole directory trees (the static dir). Empty paths are ignored.
func NewWatcher(files, dirs []string, debounce time.Duration, logger logging.Logger, onChange func()) *Watcher {
	if logger == nil {
		logger = logging.Nop()
	}
	w := &Watcher{
		files:    make(map[string]bool),
		debounce: debounce,
		logger:   logger,
		onChange: onChange,
	}
	for _, f := range files {
		if f == "" {
			continue
		}
		if abs, err := filepath.Abs(f); err == nil {
			w.files[abs] = true
		}
	}
	for _, d := range dirs {
		if d == "" {
			continue
		}
		if abs, err := filepath.Abs(d); err == nil {
			w.dirs = append(w.dirs, abs)
		}
	}
	return w
}

// Run watches until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}
	defer fw.Close()

	// Files are watched through their directory so editors that replace
	// the file on save keep triggering events.
	parents := make(map[string]bool)
	for f := range w.files {
		parents[filepath.Dir(f)] = true
	}
	for dir := range parents {
		if err := fw.Add(dir); err != nil {
			w.logger.Warn("cannot watch directory", logging.String("dir", dir), logging.Err(err))
		}
	}
	for _, dir := range w.dirs {
		w.addTree(fw, dir)
	}

	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event.Name) {
				continue
			}
			if event.Has(fsnotify.Create) && isDir(event.Name) {
				w.addTree(fw, event.Name)
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			w.logger.Debug("change detected",
				logging.String("path", event.Name),
				logging.String("op", event.Op.String()),
			)
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, w.onChange)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("file watcher error", logging.Err(err))
		}
	}
}

// relevant reports whether path is a watched file or lies inside a
// watched directory.
func (w *Watcher) relevant(path string) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	if w.files[abs] {
		return true
	}
	for _, dir := range w.dirs {
		if abs == dir || strings.HasPrefix(abs, dir+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

func (w *Watcher) addTree(fw *fsnotify.Watcher, root string) {
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil
		}
		if err := fw.Add(path); err != nil {
			w.logger.Warn("cannot watch directory", logging.String("dir", path), logging.Err(err))
		}
		return nil
	})
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
