package model

import "strings"

// Human is implemented by *Person and, through embedding, *Actor.
type Human interface {
	Individual() *Person
}

type Person struct {
	FirstName  string
	LastName   string
	Patronymic *string
	BirthYear  uint16
}

func (p *Person) Individual() *Person { return p }

// FullName is "LastName FirstName Patronymic" without trailing spaces.
func (p *Person) FullName() string {
	pat := ""
	if p.Patronymic != nil {
		pat = *p.Patronymic
	}
	return strings.TrimRight(p.LastName+" "+p.FirstName+" "+pat, " ")
}

// Equal compares the members of two persons.
func (p *Person) Equal(o *Person) bool {
	if p == nil || o == nil {
		return p == o
	}
	return p.FirstName == o.FirstName &&
		p.LastName == o.LastName &&
		equalOpt(p.Patronymic, o.Patronymic) &&
		p.BirthYear == o.BirthYear
}

func equalOpt(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

type Actor struct {
	Person
	Filmography          []FilmographyItem
	TheatricalCharacters []TheatricalCharacter
}

type TheatricalCharacter struct {
	Name string
}

type Genre struct {
	Name string
}

func (g Genre) String() string { return g.Name }
