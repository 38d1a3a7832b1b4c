// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"context"
	"log/slog"
	"path/filepath"

	"cogentcore.org/synaptic/base/errors"
	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a config file whenever it changes on disk.
type Watcher struct {

	// Filename is the config file being watched.
	Filename string

	// Base is the config that the file is read over on each reload,
	// so that values missing from the file keep their base values.
	Base Config

	watcher *fsnotify.Watcher
}

// NewWatcher returns a new watcher for the given config file,
// reading it over the given base config on each change.
// The directory of the file is watched, so that editors that
// replace the file by renaming are handled.
func NewWatcher(filename string, base Config) (*Watcher, error) {
	abs, err := filepath.Abs(filename)
	if err != nil {
		return nil, err
	}
	if _, _, err := Codecs(abs); err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, err
	}
	return &Watcher{Filename: abs, Base: base, watcher: fw}, nil
}

// Run calls the given function with each successfully reloaded
// config until the context is done or the watcher is closed.
// Reload errors are logged, and the previous config stays in force.
// It blocks, so it should typically be called in a separate goroutine.
func (w *Watcher) Run(ctx context.Context, fn func(cfg Config)) error {
	defer w.watcher.Close()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.Filename {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			cfg := w.Base
			if errors.Log(cfg.Open(w.Filename)) != nil {
				continue
			}
			slog.Info("config reloaded", "file", w.Filename)
			fn(cfg)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			errors.Log(err)
		}
	}
}

// Close stops the watcher; a running [Watcher.Run] returns.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
