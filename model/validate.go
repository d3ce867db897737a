package model

import (
	"errors"
	"fmt"
)

var ErrInvalid = errors.New("invalid record")

func invalid(path, msg string) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalid, path, msg)
}

func (p *Person) Validate() error {
	var errs []error
	if p.FirstName == "" {
		errs = append(errs, invalid("firstName", "required"))
	}
	if p.LastName == "" {
		errs = append(errs, invalid("lastName", "required"))
	}
	return errors.Join(errs...)
}

func (g Genre) Validate() error {
	if g.Name == "" {
		return invalid("genre.name", "required")
	}
	return nil
}

func (c TheatricalCharacter) Validate() error {
	if c.Name == "" {
		return invalid("theatricalCharacter.name", "required")
	}
	return nil
}

func validateGenres(gs []Genre) []error {
	var errs []error
	for _, g := range gs {
		if err := g.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

func (m *Movie) Validate() error {
	var errs []error
	if m.Name == "" {
		errs = append(errs, invalid("movie.name", "required"))
	}
	errs = append(errs, validateGenres(m.Genres)...)
	if m.Director == nil {
		errs = append(errs, invalid("movie.director", "required"))
	} else if err := m.DirectorPerson().Validate(); err != nil {
		errs = append(errs, fmt.Errorf("movie.director: %w", err))
	}
	return errors.Join(errs...)
}

func (s *Spectacle) Validate() error {
	var errs []error
	if s.Name == "" {
		errs = append(errs, invalid("spectacle.name", "required"))
	}
	errs = append(errs, validateGenres(s.Genres)...)
	return errors.Join(errs...)
}

func (f *FilmographyItem) Validate() error {
	var errs []error
	if f.Role == "" {
		errs = append(errs, invalid("filmographyItem.role", "required"))
	}
	if f.Performance == nil {
		errs = append(errs, invalid("filmographyItem.performance", "required"))
	} else if err := f.Performance.Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (a *Actor) Validate() error {
	errs := []error{a.Person.Validate()}
	for _, tc := range a.TheatricalCharacters {
		errs = append(errs, tc.Validate())
	}
	for i := range a.Filmography {
		errs = append(errs, a.Filmography[i].Validate())
	}
	return errors.Join(errs...)
}
