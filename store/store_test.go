package store

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/signadot/troupe/format"
	"github.com/signadot/troupe/model"
)

func seeded(t *testing.T, opts ...Option) *Store {
	t.Helper()
	s := New(opts...)
	for _, a := range model.Seed() {
		if err := s.Add(a); err != nil {
			t.Fatal(err)
		}
	}
	return s
}

func TestMutationsNotify(t *testing.T) {
	s := New()
	n := 0
	s.OnChange(func() { n++ })
	if !s.Saved() {
		t.Error("new store should be saved")
	}
	if err := s.Add(&model.Actor{Person: model.Person{FirstName: "A", LastName: "B"}}); err != nil {
		t.Fatal(err)
	}
	if s.Saved() {
		t.Error("store should be unsaved after add")
	}
	if err := s.Add(&model.Actor{Person: model.Person{FirstName: "A"}}); !errors.Is(err, ErrInvalidActor) {
		t.Errorf("expected invalid actor, got %v", err)
	}
	if err := s.Delete(3); !errors.Is(err, ErrNoSuchItem) {
		t.Errorf("expected no such item, got %v", err)
	}
	if err := s.Delete(0); err != nil {
		t.Fatal(err)
	}
	s.Clear()
	if n != 3 {
		t.Errorf("expected 3 notifications, got %d", n)
	}
}

func TestDocumentCache(t *testing.T) {
	s := seeded(t)
	a, err := s.Document()
	if err != nil {
		t.Fatal(err)
	}
	b, err := s.Document()
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Error("expected cached document")
	}
	if a.Name != DefaultRootName || len(a.Children) != len(model.Seed()) {
		t.Errorf("document root %s", a)
	}
	if err := s.Delete(0); err != nil {
		t.Fatal(err)
	}
	c, err := s.Document()
	if err != nil {
		t.Fatal(err)
	}
	if c == a || len(c.Children) != len(a.Children)-1 {
		t.Error("document not regenerated after change")
	}
}

func TestSaveLoadStream(t *testing.T) {
	s := seeded(t)
	buf := &bytes.Buffer{}
	if err := s.Save(buf); err != nil {
		t.Fatal(err)
	}
	if !s.Saved() {
		t.Error("expected saved")
	}
	if !strings.HasPrefix(buf.String(), "<?xml") || !strings.Contains(buf.String(), "<actors>") {
		t.Errorf("unexpected document start %q", buf.String()[:40])
	}
	doc := buf.String()

	other := New()
	if err := other.Load(strings.NewReader(doc)); err != nil {
		t.Fatal(err)
	}
	if other.Len() != s.Len() {
		t.Fatalf("loaded %d, want %d", other.Len(), s.Len())
	}
	again := &bytes.Buffer{}
	if err := other.Save(again); err != nil {
		t.Fatal(err)
	}
	if again.String() != doc {
		t.Error("document changed across load and save")
	}

	if err := other.Load(strings.NewReader("<actors><actor>")); err == nil {
		t.Fatal("expected error")
	}
	if other.Len() != s.Len() {
		t.Error("failed load modified items")
	}
}

func TestSaveLoadFile(t *testing.T) {
	dir := t.TempDir()
	for _, f := range format.AllFormats() {
		path := filepath.Join(dir, "actors"+f.Suffix())
		s := seeded(t)
		if err := s.SaveFile(path); err != nil {
			t.Fatal(err)
		}
		other := New()
		if err := other.LoadFile(path); err != nil {
			t.Fatalf("%s: %v", f, err)
		}
		if other.Len() != s.Len() {
			t.Errorf("%s: loaded %d, want %d", f, other.Len(), s.Len())
		}
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != len(format.AllFormats()) {
		t.Errorf("temporary files left behind: %v", entries)
	}
	if err := New().LoadFile(filepath.Join(dir, "missing.xml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not exist, got %v", err)
	}
}

func TestSaveFileMode(t *testing.T) {
	dir := t.TempDir()
	s := seeded(t)
	fresh := filepath.Join(dir, "fresh.xml")
	if err := s.SaveFile(fresh); err != nil {
		t.Fatal(err)
	}
	kept := filepath.Join(dir, "kept.xml")
	if err := os.WriteFile(kept, nil, 0o640); err != nil {
		t.Fatal(err)
	}
	if err := os.Chmod(kept, 0o640); err != nil {
		t.Fatal(err)
	}
	if err := s.SaveFile(kept); err != nil {
		t.Fatal(err)
	}
	for path, want := range map[string]os.FileMode{fresh: NewFileMode, kept: 0o640} {
		fi, err := os.Stat(path)
		if err != nil {
			t.Fatal(err)
		}
		if got := fi.Mode().Perm(); got != want {
			t.Errorf("%s: mode %v, want %v", filepath.Base(path), got, want)
		}
	}
}
