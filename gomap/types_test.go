package gomap

import (
	"fmt"
	"testing"

	"github.com/signadot/troupe/schema"
)

type Human interface{ Individual() *Person }

type Work interface{ Title() string }

type Person struct {
	FirstName  string
	LastName   string
	Patronymic *string
	BirthYear  uint16
}

func (p *Person) Individual() *Person { return p }

type Level int

const (
	Junior Level = iota
	Senior
)

func (l Level) MarshalText() ([]byte, error) {
	switch l {
	case Junior:
		return []byte("junior"), nil
	case Senior:
		return []byte("senior"), nil
	}
	return nil, fmt.Errorf("bad level %d", int(l))
}

func (l *Level) UnmarshalText(d []byte) error {
	switch string(d) {
	case "junior":
		*l = Junior
	case "senior":
		*l = Senior
	default:
		return fmt.Errorf("bad level %q", d)
	}
	return nil
}

type Actor struct {
	Person
	Level  Level
	Roles  []Role
	Secret string `troupe:"-"`
}

type Role struct {
	Name   string
	IsMain bool
	Work   Work
}

type Genre struct {
	Name string
}

type Movie struct {
	Name     string
	Year     uint16
	Genres   []Genre
	Director Human `troupe:"declared"`
}

func (m *Movie) Title() string { return m.Name }

type Spectacle struct {
	Name   string
	Genres []Genre
}

func (s *Spectacle) Title() string { return s.Name }

type Chain struct {
	Name string
	Next *Chain
}

type Unregistered struct{ Name string }

func (u *Unregistered) Title() string { return u.Name }

type WithMap struct {
	M map[string]string
}

type Crew struct {
	Members []Human `troupe:"declared"`
}

func testMapper(t *testing.T) *Mapper {
	t.Helper()
	reg := schema.NewRegistry()
	reg.MustRegister(Person{}, Actor{}, Role{}, Genre{}, Movie{}, Spectacle{}, Chain{}, Crew{})
	if err := reg.Bind((*Human)(nil), Person{}); err != nil {
		t.Fatal(err)
	}
	return NewMapper(reg)
}

func ptr[T any](v T) *T { return &v }

func eastwood() Person {
	return Person{FirstName: "Clint", LastName: "Eastwood", BirthYear: 1930}
}
