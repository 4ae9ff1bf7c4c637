// Package watch reports screenshots dropped into a folder once they stop changing.
package watch

import (
	"context"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"
)

const (
	// a file is handed over once it had no events for this long
	Settle = 300 * time.Millisecond
	tick   = 100 * time.Millisecond
)

/*
Folder watches dir (not recursively) and calls onImage with the full path of
every created or rewritten file whose lower-case extension is in extensions,
after the file has been quiet for Settle. Calls happen one at a time on the
watching goroutine. Folder blocks until ctx is done.
*/
func Folder(ctx context.Context, dir string, extensions []string, onImage func(imagePath string)) (e *xerr.Error) {
	return folder(ctx, dir, extensions, onImage, nil)
}

func folder(ctx context.Context, dir string, extensions []string, onImage func(string), ready chan<- struct{}) (e *xerr.Error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		e = xerr.NewError(err, "create folder watcher", dir)
		return e
	}
	defer func() {
		_ = w.Close()
	}()

	err = w.Add(dir)
	if err != nil {
		e = xerr.NewError(err, "watch folder", dir)
		return e
	}
	tl.Log(tl.Notice, palette.BlueBold, "%s '%s' for new screenshots (debounced)", "Watching", dir)
	if ready != nil {
		close(ready)
	}

	pending := map[string]time.Time{}
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			tl.Log(tl.Info, palette.Purple, "Stopped watching '%s'", dir)
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) {
				continue
			}
			if !slices.Contains(extensions, strings.ToLower(filepath.Ext(ev.Name))) {
				continue
			}
			tl.Log(tl.Debug, palette.CyanDim, "Event %s on '%s'", ev.Op, ev.Name)
			pending[ev.Name] = time.Now()

		case <-ticker.C:
			now := time.Now()
			for name, last := range pending {
				if now.Sub(last) < Settle {
					continue
				}
				delete(pending, name)
				onImage(name)
			}

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			tl.Log(tl.Warning, palette.Yellow, "Watch error on '%s': %v", dir, err)
		}
	}
}
