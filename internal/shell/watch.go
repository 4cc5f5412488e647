package shell

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch runs the file at path, then runs it again each time it is written,
// until ctx is done. The directory is watched so that editors replacing the
// file by a rename are seen too.
func (r *Runner) Watch(ctx context.Context, path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}
	defer w.Close()

	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}

	r.rerun(abs)

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}

			if filepath.Clean(ev.Name) != abs {
				continue
			}

			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
				r.log.Info("file changed", "path", abs, "op", ev.Op.String())
				r.rerun(abs)
			}

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}

			r.log.Warn("watch error", "path", abs, "err", err)
		}
	}
}

func (r *Runner) rerun(path string) {
	status, err := r.RunFile(path)
	if err != nil {
		fmt.Fprintf(r.errOut, "%s: %v\n", r.program, err)

		return
	}

	r.log.Debug("run finished", "path", path, "status", status)
}
