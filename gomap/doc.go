// Package gomap maps Go object graphs to ir trees and back.
//
// # Usage
//
//	reg := schema.NewRegistry()
//	reg.MustRegister(Movie{}, Spectacle{})
//	m := gomap.NewMapper(reg)
//
//	// Go -> document
//	err := m.Serialize(w, items)
//
//	// document -> Go
//	var items []*Actor
//	err := m.Deserialize(r, &items)
//
// A document is a root element wrapping one element per item of the root
// collection. Record members become child elements named after the member
// with the first letter lowered, collections become wrapper elements whose
// items are named after the collection's declared item type, and leaves
// hold the text of primitives and encoding.TextMarshaler values.
//
// # Discriminators
//
// When the reader cannot infer the concrete type of a record from the
// declared Go type of its slot (in practice: the slot is an interface), the
// writer emits a reserved first child _type holding the registry name of
// the runtime type. Members tagged troupe:"declared" are written without a
// discriminator, using only the members of their declared record type.
//
// # Related Packages
//
//   - github.com/signadot/troupe/schema - type catalog and registry
//   - github.com/signadot/troupe/ir - tree representation
//   - github.com/signadot/troupe/encode, github.com/signadot/troupe/parse - byte streams
package gomap
