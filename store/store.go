package store

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/signadot/troupe/format"
	"github.com/signadot/troupe/gomap"
	"github.com/signadot/troupe/ir"
	"github.com/signadot/troupe/model"
)

const (
	DefaultRootName = "actors"

	NewFileMode os.FileMode = 0o644
)

var (
	ErrInvalidActor = errors.New("invalid actor")
	ErrNoSuchItem   = errors.New("no such item")
)

type Store struct {
	mu       sync.Mutex
	mapper   *gomap.Mapper
	root     string
	format   format.Format
	fmtSet   bool
	encOpts  []gomap.MapOption
	decOpts  []gomap.UnmapOption
	items    []*model.Actor
	onChange []func()
	saved    bool
	doc      *ir.Node
}

type Option func(*Store)

func WithMapper(m *gomap.Mapper) Option {
	return func(s *Store) { s.mapper = m }
}

// WithFormat fixes the document format. Without it files use the format
// given by their suffix and streams use XML.
func WithFormat(f format.Format) Option {
	return func(s *Store) {
		s.format = f
		s.fmtSet = true
	}
}

func WithRootName(name string) Option {
	return func(s *Store) { s.root = name }
}

// WithMapOptions adds options used when saving, such as encoder settings.
func WithMapOptions(opts ...gomap.MapOption) Option {
	return func(s *Store) { s.encOpts = append(s.encOpts, opts...) }
}

// WithUnmapOptions adds options used when loading.
func WithUnmapOptions(opts ...gomap.UnmapOption) Option {
	return func(s *Store) { s.decOpts = append(s.decOpts, opts...) }
}

func New(opts ...Option) *Store {
	s := &Store{
		root:  DefaultRootName,
		saved: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.mapper == nil {
		s.mapper = gomap.DefaultMapper()
	}
	return s
}

// Items returns a copy of the item list.
func (s *Store) Items() []*model.Actor {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.items)
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Add appends a valid actor.
func (s *Store) Add(a *model.Actor) error {
	if a == nil {
		return fmt.Errorf("%w: nil", ErrInvalidActor)
	}
	if err := a.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidActor, err)
	}
	s.mu.Lock()
	s.items = append(s.items, a)
	fs := s.changedLocked()
	s.mu.Unlock()
	notify(fs)
	return nil
}

func (s *Store) Delete(i int) error {
	s.mu.Lock()
	if i < 0 || i >= len(s.items) {
		n := len(s.items)
		s.mu.Unlock()
		return fmt.Errorf("%w: index %d of %d", ErrNoSuchItem, i, n)
	}
	s.items = slices.Delete(s.items, i, i+1)
	fs := s.changedLocked()
	s.mu.Unlock()
	notify(fs)
	return nil
}

func (s *Store) Clear() {
	s.mu.Lock()
	s.items = nil
	fs := s.changedLocked()
	s.mu.Unlock()
	notify(fs)
}

// OnChange registers f to be called after every mutation.
func (s *Store) OnChange(f func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = append(s.onChange, f)
}

// Saved reports whether the items are unchanged since the last load or save.
func (s *Store) Saved() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saved
}

func (s *Store) changedLocked() []func() {
	s.saved = false
	s.doc = nil
	return slices.Clone(s.onChange)
}

func notify(fs []func()) {
	for _, f := range fs {
		f()
	}
}

// Document returns the document tree of the items, cached until the next
// mutation. Callers must not modify it.
func (s *Store) Document() (*ir.Node, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.doc != nil {
		return s.doc, nil
	}
	doc, err := s.mapper.ToIR(s.items, gomap.RootName(s.root))
	if err != nil {
		return nil, err
	}
	s.doc = doc
	return doc, nil
}

// Load replaces the items with those read from r. On error the items are
// unchanged.
func (s *Store) Load(r io.Reader) error {
	return s.load(r, s.streamFormat())
}

func (s *Store) load(r io.Reader, f format.Format) error {
	var items []*model.Actor
	opts := append([]gomap.UnmapOption{gomap.Format(f)}, s.decOpts...)
	if err := s.mapper.Deserialize(r, &items, opts...); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = items
	s.doc = nil
	s.saved = true
	return nil
}

// Save writes the items to w.
func (s *Store) Save(w io.Writer) error {
	return s.save(w, s.streamFormat())
}

func (s *Store) save(w io.Writer, f format.Format) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	opts := append([]gomap.MapOption{gomap.RootName(s.root), gomap.Format(f)}, s.encOpts...)
	if err := s.mapper.Serialize(w, s.items, opts...); err != nil {
		return err
	}
	s.saved = true
	return nil
}

func (s *Store) streamFormat() format.Format {
	if s.fmtSet {
		return s.format
	}
	return format.XMLFormat
}

func (s *Store) fileFormat(path string) format.Format {
	if s.fmtSet {
		return s.format
	}
	return format.FromSuffix(path)
}

func (s *Store) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := s.load(f, s.fileFormat(path)); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// SaveFile writes the items to a temporary file next to path and renames
// it over path. An existing file keeps its permissions, a new one gets
// NewFileMode.
func (s *Store) SaveFile(path string) (err error) {
	mode := NewFileMode
	if fi, statErr := os.Stat(path); statErr == nil {
		mode = fi.Mode().Perm()
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()
	if err = tmp.Chmod(mode); err != nil {
		return err
	}
	if err = s.save(tmp, s.fileFormat(path)); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
