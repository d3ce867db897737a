package model

import (
	"sync"

	"github.com/signadot/troupe/gomap"
	"github.com/signadot/troupe/schema"
)

// The catalogue registry is the default for the package level gomap
// functions.
func init() {
	gomap.SetDefaultRegistry(Registry())
}

// Registry returns the registry naming the catalogue records
// model.Person, model.Actor and so on, with Human bound to Person.
var Registry = sync.OnceValue(func() *schema.Registry {
	reg := schema.NewRegistry()
	reg.MustRegister(
		Person{},
		Actor{},
		Movie{},
		Spectacle{},
		Genre{},
		TheatricalCharacter{},
		FilmographyItem{},
	)
	if err := reg.Bind((*Human)(nil), Person{}); err != nil {
		panic(err)
	}
	return reg
})
