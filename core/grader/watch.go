package grader

import (
	"context"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounce absorbs editor save storms: several writes within the window
// trigger one re-grade.
const debounce = 200 * time.Millisecond

// Watch re-runs fn whenever one of the paths changes, until the context is
// cancelled. fn runs once up front.
func Watch(ctx context.Context, paths []string, fn func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	for _, path := range paths {
		if err := watcher.Add(path); err != nil {
			return err
		}
	}

	fn()

	var timer *time.Timer
	fire := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})

		case <-fire:
			fn()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return err
		}
	}
}
