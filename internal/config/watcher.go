// Copyright 2026 The modelcatalog Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package config

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"
)

// Watcher hot-reloads the configuration file and hands each successfully
// parsed version to the reload callback. Parse failures keep the previous
// configuration in effect.
type Watcher struct {
	path    string
	reload  func(*Config)
	watcher *fsnotify.Watcher
	stop    chan struct{}
}

// NewWatcher creates a watcher for the given config path.
func NewWatcher(path string, reload func(*Config)) *Watcher {
	return &Watcher{
		path:   path,
		reload: reload,
		stop:   make(chan struct{}),
	}
}

// Start begins watching in the background. Watching the directory rather
// than the file itself survives editors that replace the file on save.
func (w *Watcher) Start() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	w.watcher = watcher

	if err := watcher.Add(filepath.Dir(w.path)); err != nil {
		watcher.Close()
		return err
	}

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != filepath.Clean(w.path) {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				// Debounce: editors often emit a burst of events per save.
				time.Sleep(100 * time.Millisecond)

				cfg, err := LoadConfig(w.path)
				if err != nil {
					log.WithError(err).Warn("Config changed but failed to reload, keeping previous configuration")
					continue
				}
				log.WithField("providers", len(cfg.Providers)).Info("Configuration reloaded")
				w.reload(cfg)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.WithError(err).Error("Config watcher error")
			case <-w.stop:
				return
			}
		}
	}()

	return nil
}

// Stop stops the watcher.
func (w *Watcher) Stop() {
	select {
	case <-w.stop:
	default:
		close(w.stop)
	}
	if w.watcher != nil {
		w.watcher.Close()
		w.watcher = nil
	}
}
