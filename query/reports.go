package query

import (
	"cmp"
	"reflect"
	"slices"
	"strings"

	"github.com/signadot/troupe/model"
)

// Stakeholder is a person with the part they play.
type Stakeholder struct {
	Profession model.Profession
	Person     model.Person
}

type DirectorStat struct {
	Director model.Person
	Movies   int
}

// Casting is an actor's role in a performance.
type Casting struct {
	Actor  model.Person
	Role   string
	IsMain bool
}

type ActorStat struct {
	Actor                model.Person
	TheatricalCharacters []model.TheatricalCharacter
	MainRoles            int
}

type GenreStat struct {
	Genre      model.Genre
	Movies     int
	Spectacles int
}

func (g GenreStat) Total() int { return g.Movies + g.Spectacles }

// PerformanceGroup holds the performances of one kind, "Movie" or
// "Spectacle".
type PerformanceGroup struct {
	Kind         string
	Performances []model.Performance
}

func contains(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

func sameText(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// Movies returns the distinct movies of the filmographies, in order of
// first appearance.
func Movies(actors []*model.Actor) []*model.Movie {
	var res []*model.Movie
	for _, a := range actors {
		for i := range a.Filmography {
			m, ok := a.Filmography[i].Performance.(*model.Movie)
			if !ok || slices.ContainsFunc(res, m.Equal) {
				continue
			}
			res = append(res, m)
		}
	}
	return res
}

func spectacles(actors []*model.Actor) []*model.Spectacle {
	var res []*model.Spectacle
	for _, a := range actors {
		for i := range a.Filmography {
			s, ok := a.Filmography[i].Performance.(*model.Spectacle)
			if !ok || slices.ContainsFunc(res, s.Equal) {
				continue
			}
			res = append(res, s)
		}
	}
	return res
}

func directors(actors []*model.Actor) []*model.Person {
	var res []*model.Person
	for _, m := range Movies(actors) {
		d := m.DirectorPerson()
		if d == nil || slices.ContainsFunc(res, d.Equal) {
			continue
		}
		res = append(res, d)
	}
	return res
}

// SortedActors orders actors by full name, then birth year.
func SortedActors(actors []*model.Actor) []*model.Actor {
	res := slices.Clone(actors)
	slices.SortStableFunc(res, func(a, b *model.Actor) int {
		return cmp.Or(
			cmp.Compare(a.FullName(), b.FullName()),
			cmp.Compare(a.BirthYear, b.BirthYear))
	})
	return res
}

// MoviesFromYear returns the movies released in year or later, newest
// first, then by name.
func MoviesFromYear(actors []*model.Actor, year uint16) []*model.Movie {
	var res []*model.Movie
	for _, m := range Movies(actors) {
		if m.Year >= year {
			res = append(res, m)
		}
	}
	sortMovies(res)
	return res
}

func sortMovies(ms []*model.Movie) {
	slices.SortStableFunc(ms, func(a, b *model.Movie) int {
		return cmp.Or(
			cmp.Compare(b.Year, a.Year),
			cmp.Compare(a.Name, b.Name))
	})
}

// Stakeholders lists actors, then directors, each group ordered by full
// name. A person who acts and directs appears in both groups.
func Stakeholders(actors []*model.Actor) []Stakeholder {
	var res []Stakeholder
	add := func(p model.Profession, who *model.Person) {
		for i := range res {
			if res[i].Profession == p && res[i].Person.Equal(who) {
				return
			}
		}
		res = append(res, Stakeholder{Profession: p, Person: *who})
	}
	for _, a := range actors {
		add(model.ActorProfession, &a.Person)
	}
	for _, d := range directors(actors) {
		add(model.DirectorProfession, d)
	}
	slices.SortStableFunc(res, func(a, b Stakeholder) int {
		return cmp.Or(
			cmp.Compare(a.Profession, b.Profession),
			cmp.Compare(a.Person.FullName(), b.Person.FullName()))
	})
	return res
}

// DirectorStats counts distinct movies per director, most prolific first,
// then by full name.
func DirectorStats(actors []*model.Actor) []DirectorStat {
	var res []DirectorStat
outer:
	for _, m := range Movies(actors) {
		d := m.DirectorPerson()
		if d == nil {
			continue
		}
		for i := range res {
			if res[i].Director.Equal(d) {
				res[i].Movies++
				continue outer
			}
		}
		res = append(res, DirectorStat{Director: *d, Movies: 1})
	}
	slices.SortStableFunc(res, func(a, b DirectorStat) int {
		return cmp.Or(
			cmp.Compare(b.Movies, a.Movies),
			cmp.Compare(a.Director.FullName(), b.Director.FullName()))
	})
	return res
}

// Spectacles returns the distinct spectacles ordered by name.
func Spectacles(actors []*model.Actor) []*model.Spectacle {
	res := spectacles(actors)
	slices.SortStableFunc(res, func(a, b *model.Spectacle) int {
		return cmp.Compare(a.Name, b.Name)
	})
	return res
}

// SpectacleCast returns who played in s, main roles first.
func SpectacleCast(actors []*model.Actor, s *model.Spectacle) []Casting {
	var res []Casting
	for _, a := range actors {
		for _, f := range a.Filmography {
			o, ok := f.Performance.(*model.Spectacle)
			if !ok || !o.Equal(s) {
				continue
			}
			res = append(res, Casting{Actor: a.Person, Role: f.Role, IsMain: f.IsMain})
		}
	}
	slices.SortStableFunc(res, func(a, b Casting) int {
		switch {
		case a.IsMain == b.IsMain:
			return 0
		case a.IsMain:
			return -1
		}
		return 1
	})
	return res
}

// TopMainRoles returns at most n actors ordered by their number of main
// roles, then by birth year.
func TopMainRoles(actors []*model.Actor, n int) []ActorStat {
	res := make([]ActorStat, 0, len(actors))
	for _, a := range actors {
		st := ActorStat{Actor: a.Person, TheatricalCharacters: a.TheatricalCharacters}
		for _, f := range a.Filmography {
			if f.IsMain {
				st.MainRoles++
			}
		}
		res = append(res, st)
	}
	slices.SortStableFunc(res, func(a, b ActorStat) int {
		return cmp.Or(
			cmp.Compare(b.MainRoles, a.MainRoles),
			cmp.Compare(a.Actor.BirthYear, b.Actor.BirthYear))
	})
	if n >= 0 && n < len(res) {
		res = res[:n]
	}
	return res
}

// FindActors returns the actors whose full name contains name, ignoring
// case.
func FindActors(actors []*model.Actor, name string) []*model.Actor {
	var res []*model.Actor
	for _, a := range actors {
		if contains(a.FullName(), name) {
			res = append(res, a)
		}
	}
	return res
}

// UniversalGenres returns the genres used by both a movie and a spectacle,
// in order of first use by a movie.
func UniversalGenres(actors []*model.Actor) []model.Genre {
	var inSpectacles []model.Genre
	for _, s := range spectacles(actors) {
		inSpectacles = append(inSpectacles, s.Genres...)
	}
	var res []model.Genre
	for _, m := range Movies(actors) {
		for _, g := range m.Genres {
			if slices.Contains(inSpectacles, g) && !slices.Contains(res, g) {
				res = append(res, g)
			}
		}
	}
	return res
}

// ActorsDirectors returns the actors who also directed a movie, youngest
// last.
func ActorsDirectors(actors []*model.Actor) []*model.Actor {
	ds := directors(actors)
	var res []*model.Actor
	for _, a := range actors {
		if slices.ContainsFunc(ds, a.Person.Equal) {
			res = append(res, a)
		}
	}
	slices.SortStableFunc(res, func(a, b *model.Actor) int {
		return cmp.Compare(a.BirthYear, b.BirthYear)
	})
	return res
}

// ActorsByCharacter returns the actors who played the theatrical character,
// compared ignoring case and surrounding space.
func ActorsByCharacter(actors []*model.Actor, character string) []*model.Actor {
	var res []*model.Actor
	for _, a := range actors {
		if slices.ContainsFunc(a.TheatricalCharacters, func(c model.TheatricalCharacter) bool {
			return sameText(c.Name, character)
		}) {
			res = append(res, a)
		}
	}
	return res
}

// MoviesByDirector returns the movies whose director's full name contains
// name, newest first.
func MoviesByDirector(actors []*model.Actor, name string) []*model.Movie {
	var res []*model.Movie
	for _, m := range Movies(actors) {
		if d := m.DirectorPerson(); d != nil && contains(d.FullName(), name) {
			res = append(res, m)
		}
	}
	slices.SortStableFunc(res, func(a, b *model.Movie) int {
		return cmp.Compare(b.Year, a.Year)
	})
	return res
}

// PerformancesByName groups the performances whose title contains name by
// kind, kinds in alphabetical order.
func PerformancesByName(actors []*model.Actor, name string) []PerformanceGroup {
	var res []PerformanceGroup
	add := func(p model.Performance) {
		kind := reflect.TypeOf(p).Elem().Name()
		for i := range res {
			if res[i].Kind == kind {
				res[i].Performances = append(res[i].Performances, p)
				return
			}
		}
		res = append(res, PerformanceGroup{Kind: kind, Performances: []model.Performance{p}})
	}
	for _, m := range Movies(actors) {
		if contains(m.Name, name) {
			add(m)
		}
	}
	for _, s := range spectacles(actors) {
		if contains(s.Name, name) {
			add(s)
		}
	}
	slices.SortFunc(res, func(a, b PerformanceGroup) int {
		return cmp.Compare(a.Kind, b.Kind)
	})
	return res
}

// GenreStats counts movies and spectacles per genre, by total then by
// movies, both descending.
func GenreStats(actors []*model.Actor) []GenreStat {
	ms, ss := Movies(actors), spectacles(actors)
	var genres []model.Genre
	addGenres := func(gs []model.Genre) {
		for _, g := range gs {
			if !slices.Contains(genres, g) {
				genres = append(genres, g)
			}
		}
	}
	for _, m := range ms {
		addGenres(m.Genres)
	}
	for _, s := range ss {
		addGenres(s.Genres)
	}
	res := make([]GenreStat, 0, len(genres))
	for _, g := range genres {
		st := GenreStat{Genre: g}
		for _, m := range ms {
			if slices.Contains(m.Genres, g) {
				st.Movies++
			}
		}
		for _, s := range ss {
			if slices.Contains(s.Genres, g) {
				st.Spectacles++
			}
		}
		res = append(res, st)
	}
	slices.SortStableFunc(res, func(a, b GenreStat) int {
		return cmp.Or(
			cmp.Compare(b.Total(), a.Total()),
			cmp.Compare(b.Movies, a.Movies))
	})
	return res
}

// SpectaclesByGenre returns the distinct spectacles having genre, compared
// ignoring case and surrounding space.
func SpectaclesByGenre(actors []*model.Actor, genre string) []*model.Spectacle {
	var res []*model.Spectacle
	for _, s := range spectacles(actors) {
		if slices.ContainsFunc(s.Genres, func(g model.Genre) bool {
			return sameText(g.Name, genre)
		}) {
			res = append(res, s)
		}
	}
	return res
}
