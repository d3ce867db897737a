package model

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/troupe/gomap"
)

func TestFullName(t *testing.T) {
	p := &Person{FirstName: "Bohdan", LastName: "Stupka", Patronymic: str("Sylvestrovych")}
	if got := p.FullName(); got != "Stupka Bohdan Sylvestrovych" {
		t.Errorf("got %q", got)
	}
	p.Patronymic = nil
	if got := p.FullName(); got != "Stupka Bohdan" {
		t.Errorf("got %q", got)
	}
}

func TestRegistryNames(t *testing.T) {
	want := []string{
		"model.Actor",
		"model.FilmographyItem",
		"model.Genre",
		"model.Movie",
		"model.Person",
		"model.Spectacle",
		"model.TheatricalCharacter",
	}
	if diff := cmp.Diff(want, Registry().Names()); diff != "" {
		t.Error(diff)
	}
}

func TestDefaultMapper(t *testing.T) {
	if gomap.DefaultRegistry() != Registry() {
		t.Fatal("catalogue registry is not the default")
	}
	want := Seed()
	d, err := gomap.Marshal(want)
	if err != nil {
		t.Fatal(err)
	}
	var got []*Actor
	if err := gomap.Unmarshal(d, &got); err != nil {
		t.Fatal(err)
	}
	if len(got) != len(want) {
		t.Fatalf("got %d actors want %d", len(got), len(want))
	}
	again, err := gomap.Marshal(got)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(string(d), string(again)); diff != "" {
		t.Errorf("second pass differs (-want +got):\n%s", diff)
	}
}

func TestSeedRoundTrip(t *testing.T) {
	m := gomap.NewMapper(Registry())
	seed := Seed()
	d, err := m.Marshal(seed, gomap.RootName("actors"))
	if err != nil {
		t.Fatal(err)
	}
	doc := string(d)
	for _, s := range []string{
		"<_type>model.Movie</_type>",
		"<_type>model.Spectacle</_type>",
		"<filmographyItem>",
		"<theatricalCharacter>",
		"<role>Billy &#34;Bronco Billy&#34; McCoy</role>",
	} {
		if !strings.Contains(doc, s) {
			t.Errorf("document lacks %q", s)
		}
	}
	if strings.Contains(doc, "<_type>model.Actor</_type>") || strings.Contains(doc, "<_type>model.Person</_type>") {
		t.Error("unexpected discriminator on actor or director")
	}

	var got []*Actor
	if err := m.Unmarshal(d, &got); err != nil {
		t.Fatal(err)
	}
	if len(got) != len(seed) {
		t.Fatalf("got %d actors, want %d", len(got), len(seed))
	}
	for i := range seed {
		if !seed[i].Person.Equal(&got[i].Person) {
			t.Errorf("actor %d: %s != %s", i, seed[i].FullName(), got[i].FullName())
		}
		if diff := cmp.Diff(seed[i].TheatricalCharacters, got[i].TheatricalCharacters); diff != "" {
			t.Errorf("actor %d characters: %s", i, diff)
		}
		if len(seed[i].Filmography) != len(got[i].Filmography) {
			t.Fatalf("actor %d filmography length", i)
		}
		for j, f := range seed[i].Filmography {
			g := got[i].Filmography[j]
			if f.Role != g.Role || f.IsMain != g.IsMain {
				t.Errorf("actor %d item %d: %+v != %+v", i, j, f, g)
			}
			switch p := f.Performance.(type) {
			case *Movie:
				gm, ok := g.Performance.(*Movie)
				if !ok || !p.Equal(gm) {
					t.Errorf("actor %d item %d: movie %v != %v", i, j, p, g.Performance)
				}
			case *Spectacle:
				gs, ok := g.Performance.(*Spectacle)
				if !ok || !p.Equal(gs) {
					t.Errorf("actor %d item %d: spectacle %v != %v", i, j, p, g.Performance)
				}
			}
		}
	}

	// an actor who directs is read back as a person
	eastwood := got[len(got)-1]
	bronco := eastwood.Filmography[0].Performance.(*Movie)
	if _, ok := bronco.Director.(*Person); !ok {
		t.Errorf("director read as %T", bronco.Director)
	}

	again, err := m.Marshal(got, gomap.RootName("actors"))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(doc, string(again)); diff != "" {
		t.Errorf("document changed after round trip (-first +second):\n%s", diff)
	}
}

func TestValidate(t *testing.T) {
	for _, a := range Seed() {
		if err := a.Validate(); err != nil {
			t.Errorf("%s: %v", a.FullName(), err)
		}
	}
	bad := &Actor{
		Person:      Person{FirstName: "x"},
		Filmography: []FilmographyItem{{Role: "r", Performance: &Movie{Name: "m"}}},
	}
	err := bad.Validate()
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected invalid, got %v", err)
	}
	for _, s := range []string{"lastName", "movie.director"} {
		if !strings.Contains(err.Error(), s) {
			t.Errorf("error %q lacks %q", err, s)
		}
	}
}

func TestProfessionText(t *testing.T) {
	for _, p := range []Profession{ActorProfession, DirectorProfession} {
		d, err := p.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Profession
		if err := back.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if back != p {
			t.Errorf("%s != %s", back, p)
		}
	}
	var p Profession
	if err := p.UnmarshalText([]byte("producer")); err == nil {
		t.Error("expected error")
	}
}
