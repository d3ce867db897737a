package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/signadot/troupe/encode"
	"github.com/signadot/troupe/ir"
	"github.com/signadot/troupe/libdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := getObjFile(cc, args[0], cfg.parseOpts(args[0])...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := getObjFile(cc, args[1], cfg.parseOpts(args[1])...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	if cfg.Reverse {
		a, b = b, a
		args[0], args[1] = args[1], args[0]
	}
	var differs bool
	if cfg.Text {
		differs, err = diffText(cfg, cc.Out, args, a, b)
	} else {
		differs, err = diffTrees(cc.Out, a, b)
	}
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func diffTrees(w io.Writer, a, b *ir.Node) (bool, error) {
	changes := libdiff.Diff(a, b)
	if len(changes) == 0 {
		return false, nil
	}
	_, err := io.WriteString(w, libdiff.Format(changes))
	return true, err
}

// diffText encodes both documents the same way and compares the lines.
func diffText(cfg *DiffConfig, w io.Writer, names []string, a, b *ir.Node) (bool, error) {
	opts := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat(names[0])),
		encode.Indent(cfg.indent()),
	}
	ab, bb := &bytes.Buffer{}, &bytes.Buffer{}
	if err := encode.Encode(a, ab, opts...); err != nil {
		return false, err
	}
	if err := encode.Encode(b, bb, opts...); err != nil {
		return false, err
	}
	if libdiff.Same(ab.String(), bb.String()) {
		return false, nil
	}
	u := libdiff.Unified(ab.String(), bb.String(),
		libdiff.Labels(names[0], names[1]),
		libdiff.Context(cfg.Context),
		libdiff.Color(cfg.useColor(w)))
	_, err := io.WriteString(w, u)
	return true, err
}
