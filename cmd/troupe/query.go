package main

import (
	"fmt"

	"github.com/signadot/troupe/encode"
	"github.com/signadot/troupe/ir"
	"github.com/signadot/troupe/query"

	"github.com/scott-cotton/cli"
)

func queryCmd(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		cfg.Query.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: query requires an element name", cli.ErrUsage)
	}
	element, predicate := args[0], ""
	args = args[1:]
	if len(args) > 0 {
		predicate, args = args[0], args[1:]
	}
	if predicate != "" {
		if _, err := query.Compile(predicate); err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
	}
	var found, paths []*ir.Node
	for _, file := range inputs(args) {
		doc, err := getObjFile(cc, file, cfg.parseOpts(file)...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		res, err := query.Select(doc, element, predicate)
		if err != nil {
			return fmt.Errorf("error querying %s: %w", file, err)
		}
		theLog.Debug("selected", "file", file, "matches", len(res))
		for _, n := range res {
			paths = append(paths, ir.FromText("path", n.Path()))
			found = append(found, n.Clone())
		}
	}
	if cfg.Count {
		_, err := fmt.Fprintln(cc.Out, len(found))
		return err
	}
	if cfg.Paths {
		found = paths
	}
	out := ir.FromList("results", found)
	return encode.Encode(out, cc.Out, cfg.encOpts(cc.Out)...)
}
