package main

import (
	"bytes"
	"fmt"

	"github.com/signadot/troupe/gomap"
	"github.com/signadot/troupe/ir"
	"github.com/signadot/troupe/model"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: patch requires 2 arguments, a patch file and a file to which to apply it", cli.ErrUsage)
	}
	p, err := readInput(cc, args[0])
	if err != nil {
		return err
	}
	target, err := getObjFile(cc, args[1], cfg.parseOpts(args[1])...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	res, err := applyPatch(target, p, cfg.Merge)
	if err != nil {
		return fmt.Errorf("error patching %s: %w", args[1], err)
	}
	actors, err := readCatalogue(cfg.MainConfig, res)
	if err != nil {
		return fmt.Errorf("patched %s is not a valid catalogue: %w", args[1], err)
	}
	// the JSON form loses member order; writing the model restores it.
	if err := gomap.Serialize(cc.Out, actors, cfg.mapOpts(cc.Out)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}

// applyPatch applies an RFC 6902 patch, or a merge patch when merge is set
// or the patch is not a JSON array, to the JSON form of doc.
func applyPatch(doc *ir.Node, p []byte, merge bool) (*ir.Node, error) {
	d, err := doc.MarshalJSON()
	if err != nil {
		return nil, err
	}
	merge = merge || !bytes.HasPrefix(bytes.TrimSpace(p), []byte("["))
	var out []byte
	if merge {
		out, err = jsonpatch.MergePatch(d, p)
	} else {
		var ops jsonpatch.Patch
		ops, err = jsonpatch.DecodePatch(p)
		if err != nil {
			return nil, err
		}
		out, err = ops.Apply(d)
	}
	if err != nil {
		return nil, err
	}
	res := &ir.Node{}
	if err := res.UnmarshalJSON(out); err != nil {
		return nil, err
	}
	return res, nil
}

// readCatalogue reads and validates the actors of doc.
func readCatalogue(cfg *MainConfig, doc *ir.Node) ([]*model.Actor, error) {
	var actors []*model.Actor
	if err := gomap.FromIR(doc, &actors, gomap.MaxDepth(cfg.Settings.maxDepth())); err != nil {
		return nil, err
	}
	for i, a := range actors {
		if err := a.Validate(); err != nil {
			return nil, fmt.Errorf("actor %d: %w", i, err)
		}
	}
	return actors, nil
}
