package gomap

import (
	"github.com/signadot/troupe/encode"
	"github.com/signadot/troupe/format"
	"github.com/signadot/troupe/parse"
)

const (
	DefaultRootName = "items"
	DefaultMaxDepth = 512
)

// MapOption is an option for controlling the mapping process from Go to a document.
type MapOption interface {
	applyMap(*mapConfig)
}

// UnmapOption is an option for controlling the mapping process from a document to Go.
type UnmapOption interface {
	applyUnmap(*unmapConfig)
}

// Option applies in both directions.
type Option interface {
	MapOption
	UnmapOption
}

type mapConfig struct {
	// EncodeOptions to pass through to encode.Encode
	EncodeOptions []encode.EncodeOption
	RootName      string
	MaxDepth      int
}

type unmapConfig struct {
	// ParseOptions to pass through to parse.Parse
	ParseOptions []parse.ParseOption
	MaxDepth     int
}

func newMapConfig(opts ...MapOption) *mapConfig {
	cfg := &mapConfig{
		RootName: DefaultRootName,
		MaxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt.applyMap(cfg)
	}
	return cfg
}

func newUnmapConfig(opts ...UnmapOption) *unmapConfig {
	cfg := &unmapConfig{
		MaxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt.applyUnmap(cfg)
	}
	return cfg
}

// ToEncodeOptions extracts EncodeOptions from a slice of MapOptions.
func ToEncodeOptions(opts ...MapOption) []encode.EncodeOption {
	return newMapConfig(opts...).EncodeOptions
}

// ToParseOptions extracts ParseOptions from a slice of UnmapOptions.
func ToParseOptions(opts ...UnmapOption) []parse.ParseOption {
	return newUnmapConfig(opts...).ParseOptions
}

type encodeOptions []encode.EncodeOption

func (o encodeOptions) applyMap(c *mapConfig) {
	c.EncodeOptions = append(c.EncodeOptions, o...)
}

// EncodeOptions passes options to the encoder.
func EncodeOptions(opts ...encode.EncodeOption) MapOption {
	return encodeOptions(opts)
}

type parseOptions []parse.ParseOption

func (o parseOptions) applyUnmap(c *unmapConfig) {
	c.ParseOptions = append(c.ParseOptions, o...)
}

// ParseOptions passes options to the parser.
func ParseOptions(opts ...parse.ParseOption) UnmapOption {
	return parseOptions(opts)
}

type rootName string

func (o rootName) applyMap(c *mapConfig) { c.RootName = string(o) }

// RootName sets the name of the root element. The reader ignores it.
func RootName(name string) MapOption {
	return rootName(name)
}

type maxDepth int

func (o maxDepth) applyMap(c *mapConfig)     { c.MaxDepth = int(o) }
func (o maxDepth) applyUnmap(c *unmapConfig) { c.MaxDepth = int(o) }

// MaxDepth bounds the nesting of the object graph and of documents.
func MaxDepth(n int) Option {
	return maxDepth(n)
}

type formatOption format.Format

func (o formatOption) applyMap(c *mapConfig) {
	c.EncodeOptions = append(c.EncodeOptions, encode.EncodeFormat(format.Format(o)))
}
func (o formatOption) applyUnmap(c *unmapConfig) {
	c.ParseOptions = append(c.ParseOptions, parse.ParseFormat(format.Format(o)))
}

// Format selects the document format for both directions.
func Format(f format.Format) Option {
	return formatOption(f)
}
