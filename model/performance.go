package model

import "slices"

// Performance is a movie or a spectacle.
type Performance interface {
	Title() string
	Categories() []Genre
	Validate() error
}

type Movie struct {
	Name     string
	Year     uint16
	Genres   []Genre
	Director Human `troupe:"declared"`
}

func (m *Movie) Title() string       { return m.Name }
func (m *Movie) Categories() []Genre { return m.Genres }

// DirectorPerson returns the director as a Person, or nil.
func (m *Movie) DirectorPerson() *Person {
	if m.Director == nil {
		return nil
	}
	return m.Director.Individual()
}

// Equal compares movies by value, the director as a Person.
func (m *Movie) Equal(o *Movie) bool {
	return m.Name == o.Name &&
		m.Year == o.Year &&
		slices.Equal(m.Genres, o.Genres) &&
		m.DirectorPerson().Equal(o.DirectorPerson())
}

type Spectacle struct {
	Name   string
	Genres []Genre
}

func (s *Spectacle) Title() string       { return s.Name }
func (s *Spectacle) Categories() []Genre { return s.Genres }

func (s *Spectacle) Equal(o *Spectacle) bool {
	return s.Name == o.Name && slices.Equal(s.Genres, o.Genres)
}

type FilmographyItem struct {
	Role        string
	IsMain      bool
	Performance Performance
}
