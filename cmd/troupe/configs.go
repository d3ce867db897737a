package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/troupe/encode"
	"github.com/signadot/troupe/format"
	"github.com/signadot/troupe/gomap"
	"github.com/signadot/troupe/parse"
	"github.com/signadot/troupe/store"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	WireOut bool `cli:"name=wire desc='output in compact format'"`
	Verbose bool `cli:"name=v aliases=verbose desc='log debug messages'"`
	Indent  int  `cli:"name=indent desc='indentation of nested lines'"`

	X bool `cli:"name=x aliases=xml desc='do i/o in xml'"`
	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *format.Format

	ConfigPath string
	Settings   *Settings

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) configOpt(_ *cli.Context, v string) (any, error) {
	cfg.ConfigPath = v
	return v, nil
}

// isSet reports whether the main option name was given.
func (cfg *MainConfig) isSet(name string) bool {
	for _, opt := range cfg.Main.Opts {
		if opt.Name == name {
			return opt.Value != nil
		}
	}
	return false
}

func (cfg *MainConfig) shorthand() *format.Format {
	var f format.Format
	switch {
	case cfg.X:
		f = format.XMLFormat
	case cfg.Y:
		f = format.YAMLFormat
	case cfg.J:
		f = format.JSONFormat
	default:
		return nil
	}
	return &f
}

// inFormat is the format of input named path: -I, the shorthands, the
// configuration, then the path suffix.
func (cfg *MainConfig) inFormat(path string) format.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	if f := cfg.shorthand(); f != nil {
		return *f
	}
	if f := cfg.Settings.format(); f != nil {
		return *f
	}
	if path == "" || path == "-" {
		return format.XMLFormat
	}
	return format.FromSuffix(path)
}

func (cfg *MainConfig) outFormat(path string) format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	if f := cfg.shorthand(); f != nil {
		return *f
	}
	if f := cfg.Settings.format(); f != nil {
		return *f
	}
	if path == "" || path == "-" {
		return format.XMLFormat
	}
	return format.FromSuffix(path)
}

func (cfg *MainConfig) parseOpts(path string) []parse.ParseOption {
	return []parse.ParseOption{parse.ParseFormat(cfg.inFormat(path))}
}

func (cfg *MainConfig) indent() int {
	if !cfg.isSet("indent") && cfg.Settings.Indent != nil {
		return *cfg.Settings.Indent
	}
	if !cfg.isSet("indent") {
		return 2
	}
	return cfg.Indent
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat(cfg.Out)),
		encode.EncodeWire(cfg.WireOut),
		encode.Indent(cfg.indent()),
	}
	if cfg.useColor(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// useColor follows -color when given, then the configuration, then
// whether w is a terminal.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.isSet("color") {
		return cfg.Color
	}
	if cfg.Settings.Color != nil {
		return *cfg.Settings.Color
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (cfg *MainConfig) mapOpts(w io.Writer) []gomap.MapOption {
	return []gomap.MapOption{
		gomap.EncodeOptions(cfg.encOpts(w)...),
		gomap.MaxDepth(cfg.Settings.maxDepth()),
		gomap.RootName(cfg.Settings.root()),
	}
}

func (cfg *MainConfig) newStore(path string) *store.Store {
	return store.New(
		store.WithFormat(cfg.inFormat(path)),
		store.WithRootName(cfg.Settings.root()),
		store.WithUnmapOptions(gomap.MaxDepth(cfg.Settings.maxDepth())),
	)
}

type SeedConfig struct {
	*MainConfig

	Seed *cli.Command
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Watch bool `cli:"name=w aliases=watch desc='check again whenever a file changes'"`

	Check *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Reverse bool `cli:"name=r desc='reverse the diff'"`
	Text    bool `cli:"name=u desc='unified diff of the encoded documents'"`
	Context int  `cli:"name=c desc='context lines of a unified diff'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig

	Merge bool `cli:"name=m aliases=merge desc='treat the patch as a JSON merge patch'"`

	Patch *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type QueryConfig struct {
	*MainConfig

	Count bool `cli:"name=count desc='print the number of matches only'"`
	Paths bool `cli:"name=paths desc='print the paths of the matches'"`

	Query *cli.Command
}

type ReportConfig struct {
	*MainConfig

	List bool `cli:"name=l desc='list available reports'"`

	Report *cli.Command
}
