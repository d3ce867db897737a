package main

import (
	"fmt"
	"io"

	"github.com/signadot/troupe/gomap"
	"github.com/signadot/troupe/model"
	"github.com/signadot/troupe/store"

	"github.com/scott-cotton/cli"
)

func seed(cfg *SeedConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Seed.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: seed takes at most one file", cli.ErrUsage)
	}
	path := "-"
	if len(args) == 1 {
		path = args[0]
	}
	var w io.Writer = cc.Out
	if path != "-" {
		w = io.Discard
	}
	s := store.New(
		store.WithFormat(cfg.outFormat(path)),
		store.WithRootName(cfg.Settings.root()),
		store.WithMapOptions(gomap.EncodeOptions(cfg.encOpts(w)...), gomap.MaxDepth(cfg.Settings.maxDepth())),
	)
	for _, a := range model.Seed() {
		if err := s.Add(a); err != nil {
			return err
		}
	}
	if path == "-" {
		return s.Save(cc.Out)
	}
	if err := s.SaveFile(path); err != nil {
		return err
	}
	theLog.Info("seeded", "file", path, "actors", s.Len())
	return nil
}
