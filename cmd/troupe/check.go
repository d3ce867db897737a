package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/signadot/troupe/libdiff"
	"github.com/signadot/troupe/parse"

	"github.com/fsnotify/fsnotify"
	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Watch && len(args) == 0 {
		return fmt.Errorf("%w: check -w requires files", cli.ErrUsage)
	}
	files := inputs(args)
	failed := 0
	for _, file := range files {
		if !checkAndLog(cfg, cc, file) {
			failed++
		}
	}
	if cfg.Watch {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		return watch(ctx, cfg, cc, files)
	}
	if failed > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func checkAndLog(cfg *CheckConfig, cc *cli.Context, file string) bool {
	n, err := checkFile(cfg, cc, file)
	if err != nil {
		theLog.Error("check failed", "file", file, "err", err)
		return false
	}
	theLog.Info("ok", "file", file, "actors", n)
	return true
}

// checkFile loads file into the model, validates every actor and verifies
// that writing the actors back is deterministic and loses nothing.
func checkFile(cfg *CheckConfig, cc *cli.Context, file string) (int, error) {
	d, err := readInput(cc, file)
	if err != nil {
		return 0, err
	}
	in, err := parse.Parse(d, cfg.parseOpts(file)...)
	if err != nil {
		return 0, err
	}
	s := cfg.newStore(file)
	if err := s.Load(bytes.NewReader(d)); err != nil {
		return 0, err
	}
	var errs []error
	for i, a := range s.Items() {
		if err := a.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("actor %d (%s): %w", i, a.FullName(), err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return 0, err
	}

	first, second := &bytes.Buffer{}, &bytes.Buffer{}
	if err := s.Save(first); err != nil {
		return 0, err
	}
	if err := s.Save(second); err != nil {
		return 0, err
	}
	if !libdiff.Same(first.String(), second.String()) {
		return 0, fmt.Errorf("output is not deterministic:\n%s",
			libdiff.Unified(first.String(), second.String(), libdiff.Labels("first", "second")))
	}
	out, err := parse.Parse(first.Bytes(), cfg.parseOpts(file)...)
	if err != nil {
		return 0, fmt.Errorf("re-reading output: %w", err)
	}
	if changes := libdiff.Diff(in, out); len(changes) != 0 {
		for _, c := range changes {
			theLog.Warn("not preserved", "file", file, "change", c.String())
		}
		return 0, fmt.Errorf("%d differences between input and output", len(changes))
	}
	return s.Len(), nil
}

const settle = 100 * time.Millisecond

// watch checks files again whenever they change. Directories are watched
// so that editors replacing files by rename are noticed.
func watch(ctx context.Context, cfg *CheckConfig, cc *cli.Context, files []string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	watched := map[string]bool{}
	dirs := map[string]bool{}
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return err
		}
		watched[abs] = true
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := w.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
		dirs[dir] = true
	}
	theLog.Info("watching", "files", len(files))

	pending := map[string]bool{}
	timer := time.NewTimer(settle)
	timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			theLog.Error("watch", "err", err)
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !watched[filepath.Clean(ev.Name)] {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			theLog.Debug("changed", "file", ev.Name, "op", ev.Op.String())
			pending[ev.Name] = true
			timer.Reset(settle)
		case <-timer.C:
			for f := range pending {
				if _, err := os.Stat(f); err != nil {
					continue
				}
				checkAndLog(cfg, cc, f)
			}
			clear(pending)
		}
	}
}
