// Package gallery serves random images from a local JSON file and hot-reloads
// it when the file changes on disk. It is the fallback source for the image
// commands when the upstream API is down; a missing or corrupt file just means
// an empty gallery, never a startup failure.
package gallery

import (
	"encoding/json"
	"errors"
	"math/rand/v2"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Image is one gallery entry.
type Image struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type galleryFile struct {
	Images []Image `json:"images"`
}

type Gallery struct {
	log  *zap.Logger
	path string

	mu     sync.RWMutex
	images []Image

	watcher *fsnotify.Watcher
}

// Open loads path and starts watching it for changes. The watch covers the
// parent directory because editors and deploy scripts replace files instead
// of writing them in place.
func Open(path string, log *zap.Logger) (*Gallery, error) {
	g := &Gallery{log: log, path: path}
	g.Reload()

	w, err := fsnotify.NewWatcher()
	if err != nil {
		log.Warn("gallery watcher unavailable, hot reload disabled", zap.Error(err))
		return g, nil
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		log.Warn("gallery watch failed, hot reload disabled", zap.Error(err))
		_ = w.Close()
		return g, nil
	}
	g.watcher = w
	go g.watch()
	return g, nil
}

func (g *Gallery) watch() {
	for {
		select {
		case ev, ok := <-g.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != filepath.Clean(g.path) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				g.log.Info("gallery file changed, reloading", zap.String("path", g.path))
				g.Reload()
			}
		case err, ok := <-g.watcher.Errors:
			if !ok {
				return
			}
			g.log.Warn("gallery watcher error", zap.Error(err))
		}
	}
}

// Reload re-reads the gallery file. Failures keep the previous set when the
// file is unreadable mid-replace, and empty the set when it is truly gone.
func (g *Gallery) Reload() {
	b, err := os.ReadFile(g.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			g.set(nil)
		} else {
			g.log.Warn("gallery read failed", zap.Error(err))
		}
		return
	}

	var f galleryFile
	if err := json.Unmarshal(b, &f); err != nil {
		g.log.Warn("gallery parse failed, keeping previous set", zap.Error(err))
		return
	}
	g.set(f.Images)
	g.log.Info("gallery loaded", zap.Int("images", len(f.Images)))
}

func (g *Gallery) set(imgs []Image) {
	g.mu.Lock()
	g.images = imgs
	g.mu.Unlock()
}

// Random picks one entry uniformly. ok is false when the gallery is empty.
func (g *Gallery) Random() (Image, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if len(g.images) == 0 {
		return Image{}, false
	}
	return g.images[rand.N(len(g.images))], true
}

func (g *Gallery) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.images)
}

func (g *Gallery) Close() error {
	if g.watcher != nil {
		return g.watcher.Close()
	}
	return nil
}
