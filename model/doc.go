// Package model holds the theatre and film catalogue records: actors,
// their filmography of movies and spectacles, directors and genres.
//
// Actor embeds Person, so an Actor carries all Person members first. A
// movie's director is a Human written in declared-only mode: an Actor who
// directs is stored as a Person, which keeps an actor's filmography from
// reaching itself through the movies it directed.
package model
