package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/troupe/model"
	"github.com/signadot/troupe/query"
)

// reportDef describes a report. run returns the rows to serialize and the
// table to print, header first.
type reportDef struct {
	name string
	args []string
	desc string
	run  func(actors []*model.Actor, args []string) (any, [][]string, error)
}

func (d *reportDef) synopsis() string {
	if len(d.args) == 0 {
		return d.name
	}
	return d.name + " " + strings.Join(d.args, " ")
}

var reports = []*reportDef{
	{
		name: "actors",
		desc: "all actors by full name, then birth year",
		run: func(actors []*model.Actor, _ []string) (any, [][]string, error) {
			rows := query.SortedActors(actors)
			return rows, actorTable(rows), nil
		},
	},
	{
		name: "movies-from-year",
		args: []string{"YEAR"},
		desc: "movies from YEAR on, newest first",
		run: func(actors []*model.Actor, args []string) (any, [][]string, error) {
			year, err := strconv.ParseUint(args[0], 10, 16)
			if err != nil {
				return nil, nil, fmt.Errorf("bad year %q: %w", args[0], err)
			}
			rows := query.MoviesFromYear(actors, uint16(year))
			return rows, movieTable(rows), nil
		},
	},
	{
		name: "stakeholders",
		desc: "actors, then directors",
		run: func(actors []*model.Actor, _ []string) (any, [][]string, error) {
			rows := query.Stakeholders(actors)
			t := [][]string{{"Profession", "Name", "Born"}}
			for _, s := range rows {
				t = append(t, []string{s.Profession.String(), s.Person.FullName(), year(s.Person.BirthYear)})
			}
			return rows, t, nil
		},
	},
	{
		name: "directors",
		desc: "directors by number of movies",
		run: func(actors []*model.Actor, _ []string) (any, [][]string, error) {
			rows := query.DirectorStats(actors)
			t := [][]string{{"Director", "Movies"}}
			for _, s := range rows {
				t = append(t, []string{s.Director.FullName(), strconv.Itoa(s.Movies)})
			}
			return rows, t, nil
		},
	},
	{
		name: "spectacles",
		desc: "spectacles by name",
		run: func(actors []*model.Actor, _ []string) (any, [][]string, error) {
			rows := query.Spectacles(actors)
			return rows, spectacleTable(rows), nil
		},
	},
	{
		name: "cast",
		args: []string{"SPECTACLE"},
		desc: "who played in a spectacle, main roles first",
		run: func(actors []*model.Actor, args []string) (any, [][]string, error) {
			var found *model.Spectacle
			for _, s := range query.Spectacles(actors) {
				if strings.EqualFold(s.Name, args[0]) {
					found = s
					break
				}
			}
			if found == nil {
				return nil, nil, fmt.Errorf("no spectacle named %q", args[0])
			}
			rows := query.SpectacleCast(actors, found)
			t := [][]string{{"Actor", "Role", "Main"}}
			for _, c := range rows {
				t = append(t, []string{c.Actor.FullName(), c.Role, strconv.FormatBool(c.IsMain)})
			}
			return rows, t, nil
		},
	},
	{
		name: "top",
		args: []string{"N"},
		desc: "the N actors with the most main roles",
		run: func(actors []*model.Actor, args []string) (any, [][]string, error) {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 0 {
				return nil, nil, fmt.Errorf("bad count %q", args[0])
			}
			rows := query.TopMainRoles(actors, n)
			t := [][]string{{"Actor", "Born", "Main roles"}}
			for _, s := range rows {
				t = append(t, []string{s.Actor.FullName(), year(s.Actor.BirthYear), strconv.Itoa(s.MainRoles)})
			}
			return rows, t, nil
		},
	},
	{
		name: "find",
		args: []string{"NAME"},
		desc: "actors whose full name contains NAME",
		run: func(actors []*model.Actor, args []string) (any, [][]string, error) {
			rows := query.FindActors(actors, args[0])
			return rows, actorTable(rows), nil
		},
	},
	{
		name: "universal-genres",
		desc: "genres of both movies and spectacles",
		run: func(actors []*model.Actor, _ []string) (any, [][]string, error) {
			rows := query.UniversalGenres(actors)
			t := [][]string{{"Genre"}}
			for _, g := range rows {
				t = append(t, []string{g.Name})
			}
			return rows, t, nil
		},
	},
	{
		name: "actors-directors",
		desc: "actors who also directed",
		run: func(actors []*model.Actor, _ []string) (any, [][]string, error) {
			rows := query.ActorsDirectors(actors)
			return rows, actorTable(rows), nil
		},
	},
	{
		name: "by-character",
		args: []string{"CHARACTER"},
		desc: "actors who played a theatrical character",
		run: func(actors []*model.Actor, args []string) (any, [][]string, error) {
			rows := query.ActorsByCharacter(actors, args[0])
			return rows, actorTable(rows), nil
		},
	},
	{
		name: "by-director",
		args: []string{"NAME"},
		desc: "movies by directors whose full name contains NAME",
		run: func(actors []*model.Actor, args []string) (any, [][]string, error) {
			rows := query.MoviesByDirector(actors, args[0])
			return rows, movieTable(rows), nil
		},
	},
	{
		name: "performances",
		args: []string{"NAME"},
		desc: "movies and spectacles whose title contains NAME",
		run: func(actors []*model.Actor, args []string) (any, [][]string, error) {
			rows := query.PerformancesByName(actors, args[0])
			t := [][]string{{"Kind", "Title", "Genres"}}
			for _, g := range rows {
				for _, p := range g.Performances {
					t = append(t, []string{g.Kind, p.Title(), genres(p.Categories())})
				}
			}
			return rows, t, nil
		},
	},
	{
		name: "genres",
		desc: "genres by number of performances",
		run: func(actors []*model.Actor, _ []string) (any, [][]string, error) {
			rows := query.GenreStats(actors)
			t := [][]string{{"Genre", "Movies", "Spectacles", "Total"}}
			for _, s := range rows {
				t = append(t, []string{s.Genre.Name, strconv.Itoa(s.Movies), strconv.Itoa(s.Spectacles), strconv.Itoa(s.Total())})
			}
			return rows, t, nil
		},
	},
	{
		name: "spectacles-by-genre",
		args: []string{"GENRE"},
		desc: "spectacles of a genre",
		run: func(actors []*model.Actor, args []string) (any, [][]string, error) {
			rows := query.SpectaclesByGenre(actors, args[0])
			return rows, spectacleTable(rows), nil
		},
	},
}

func findReport(name string) *reportDef {
	for _, d := range reports {
		if d.name == name {
			return d
		}
	}
	return nil
}

func year(y uint16) string { return strconv.Itoa(int(y)) }

func genres(gs []model.Genre) string {
	names := make([]string, len(gs))
	for i, g := range gs {
		names[i] = g.Name
	}
	return strings.Join(names, ", ")
}

func actorTable(actors []*model.Actor) [][]string {
	t := [][]string{{"Actor", "Born", "Characters", "Roles"}}
	for _, a := range actors {
		chars := make([]string, len(a.TheatricalCharacters))
		for i, c := range a.TheatricalCharacters {
			chars[i] = c.Name
		}
		t = append(t, []string{a.FullName(), year(a.BirthYear), strings.Join(chars, ", "), strconv.Itoa(len(a.Filmography))})
	}
	return t
}

func movieTable(ms []*model.Movie) [][]string {
	t := [][]string{{"Movie", "Year", "Director", "Genres"}}
	for _, m := range ms {
		director := ""
		if d := m.DirectorPerson(); d != nil {
			director = d.FullName()
		}
		t = append(t, []string{m.Name, year(m.Year), director, genres(m.Genres)})
	}
	return t
}

func spectacleTable(ss []*model.Spectacle) [][]string {
	t := [][]string{{"Spectacle", "Genres"}}
	for _, s := range ss {
		t = append(t, []string{s.Name, genres(s.Genres)})
	}
	return t
}
