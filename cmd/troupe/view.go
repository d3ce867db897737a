package main

import (
	"fmt"
	"io"

	"github.com/signadot/troupe/encode"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	files := inputs(args)
	for i, file := range files {
		if err := viewFile(cfg, cc, cc.Out, file); err != nil {
			return err
		}
		if i < len(files)-1 {
			if _, err := io.WriteString(cc.Out, "\n"); err != nil {
				return err
			}
		}
	}
	return nil
}

func viewFile(cfg *ViewConfig, cc *cli.Context, w io.Writer, file string) error {
	y, err := getObjFile(cc, file, cfg.parseOpts(file)...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", file, err)
	}
	if err := encode.Encode(y, w, cfg.encOpts(w)...); err != nil {
		return fmt.Errorf("error encoding %s: %w", file, err)
	}
	return nil
}
