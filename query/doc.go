// Package query answers questions about the actor catalogue.
//
// Select filters the elements of a document tree with an expr-lang
// predicate. The report functions compute typed summaries (movies by year,
// director and genre statistics, casts and so on) over loaded actors;
// their row types are plain records that gomap can write.
package query
