package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	drifterrors "github.com/go-drift/statehooks/pkg/errors"
)

// Watch resolves the configuration in dir, applies it, and re-applies it
// every time hooks.yaml is written or created until ctx is done. Each
// applied configuration is also sent on the returned channel, which is
// closed when watching stops. Parse failures are reported through the
// errors package and leave the previous settings in place.
func Watch(ctx context.Context, dir string) (<-chan *Resolved, error) {
	modulePath, err := modulePath(dir)
	if err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	// Watch the directory so the file may be created after we start.
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	path := filepath.Join(dir, FileName)
	out := make(chan *Resolved)

	load := func() (*Resolved, bool) {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			reportConfig(fmt.Errorf("failed to read %s: %w", FileName, err))
			return nil, false
		}
		cfg := &Config{}
		if err == nil {
			if cfg, err = Parse(data); err != nil {
				reportConfig(err)
				return nil, false
			}
		}
		resolved := resolve(cfg, dir, modulePath)
		resolved.Apply()
		return resolved, true
	}

	go func() {
		defer close(out)
		defer watcher.Close()

		send := func(r *Resolved) bool {
			select {
			case out <- r:
				return true
			case <-ctx.Done():
				return false
			}
		}

		if resolved, ok := load(); ok && !send(resolved) {
			return
		}

		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != path {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				resolved, ok := load()
				if !ok {
					continue
				}
				if !send(resolved) {
					return
				}

			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()

	return out, nil
}

func reportConfig(err error) {
	drifterrors.Report(&drifterrors.Error{
		Op:   "config.Watch",
		Kind: drifterrors.KindConfig,
		Err:  err,
	})
}
