package gomap

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/troupe/encode"
	"github.com/signadot/troupe/format"
	"github.com/signadot/troupe/schema"
)

func sampleActors() []*Actor {
	director := eastwood()
	return []*Actor{
		{
			Person: eastwood(),
			Level:  Senior,
			Roles: []Role{
				{
					Name:   "Walt",
					IsMain: true,
					Work: &Movie{
						Name:     "Gran Torino",
						Year:     2008,
						Genres:   []Genre{{Name: "Drama"}},
						Director: &director,
					},
				},
				{
					Name: "Hamlet",
					Work: &Spectacle{Name: "Hamlet", Genres: []Genre{}},
				},
				{
					Name: "tab\there",
					Work: &Movie{Name: "a\r\nb", Year: 1999, Genres: []Genre{{Name: "two\nlines\n"}}},
				},
			},
		},
		{
			Person: Person{FirstName: "Ivan", LastName: "Petrov", Patronymic: ptr("Ivanovich"), BirthYear: 1975},
			Roles:  []Role{},
		},
	}
}

const singleActorXML = `<?xml version="1.0" encoding="UTF-8"?>
<items>
  <actor>
    <firstName>Clint</firstName>
    <lastName>Eastwood</lastName>
    <birthYear>1930</birthYear>
    <level>senior</level>
    <roles>
      <role>
        <name>Walt</name>
        <isMain>true</isMain>
        <work>
          <_type>gomap.Movie</_type>
          <name>Gran Torino</name>
          <year>2008</year>
          <genres>
            <genre>
              <name>Drama</name>
            </genre>
          </genres>
          <director>
            <firstName>Clint</firstName>
            <lastName>Eastwood</lastName>
            <birthYear>1930</birthYear>
          </director>
        </work>
      </role>
    </roles>
  </actor>
</items>
`

func TestSerializeShape(t *testing.T) {
	m := testMapper(t)
	actors := sampleActors()[:1]
	actors[0].Roles = actors[0].Roles[:1]
	actors[0].Secret = "hidden"
	d, err := m.Marshal(actors)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(singleActorXML, string(d)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestRoundTrip(t *testing.T) {
	m := testMapper(t)
	for _, f := range format.AllFormats() {
		t.Run(f.String(), func(t *testing.T) {
			want := sampleActors()
			buf := &bytes.Buffer{}
			if err := m.Serialize(buf, want, Format(f)); err != nil {
				t.Fatal(err)
			}
			var got []*Actor
			if err := m.Deserialize(buf, &got, Format(f)); err != nil {
				t.Fatalf("%v\n%s", err, buf.String())
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("round trip (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDeterministic(t *testing.T) {
	m := testMapper(t)
	a, err := m.Marshal(sampleActors())
	if err != nil {
		t.Fatal(err)
	}
	b, err := m.Marshal(sampleActors())
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Error("serializing equal values produced different documents")
	}
}

func TestDeclaredOnlyDropsDerivedMembers(t *testing.T) {
	m := testMapper(t)
	director := &Actor{
		Person: eastwood(),
		Level:  Senior,
		Roles:  []Role{{Name: "Dirty Harry"}},
	}
	movies := []*Movie{{Name: "Unforgiven", Year: 1992, Director: director}}
	d, err := m.Marshal(movies, EncodeOptions(encode.EncodeWire(true), encode.EncodeHeader(false)))
	if err != nil {
		t.Fatal(err)
	}
	want := "<items><movie><name>Unforgiven</name><year>1992</year>" +
		"<director><firstName>Clint</firstName><lastName>Eastwood</lastName><birthYear>1930</birthYear></director>" +
		"</movie></items>\n"
	if diff := cmp.Diff(want, string(d)); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	var got []*Movie
	if err := m.Unmarshal(d, &got); err != nil {
		t.Fatal(err)
	}
	p, ok := got[0].Director.(*Person)
	if !ok {
		t.Fatalf("director read as %T", got[0].Director)
	}
	if diff := cmp.Diff(eastwood(), *p); diff != "" {
		t.Error(diff)
	}
}

func TestDeclaredOnlyCollection(t *testing.T) {
	m := testMapper(t)
	crews := []Crew{{Members: []Human{&Actor{Person: eastwood(), Level: Senior}, &Person{FirstName: "Sergio"}}}}
	d, err := m.Marshal(crews)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(d), "_type") || strings.Contains(string(d), "level") {
		t.Errorf("unexpected derived content:\n%s", d)
	}
	if !strings.Contains(string(d), "<person>") {
		t.Errorf("items should be named after the declared item type:\n%s", d)
	}
	var got []Crew
	if err := m.Unmarshal(d, &got); err != nil {
		t.Fatal(err)
	}
	want := []Crew{{Members: []Human{ptr(eastwood()), &Person{FirstName: "Sergio"}}}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Error(diff)
	}
}

func TestOrdering(t *testing.T) {
	m := testMapper(t)
	in := []Genre{{Name: "c"}, {Name: "a"}, {Name: "b"}}
	d, err := m.Marshal(in, RootName("genres"))
	if err != nil {
		t.Fatal(err)
	}
	var out []Genre
	if err := m.Unmarshal(d, &out); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(in, out); diff != "" {
		t.Error(diff)
	}

	d, err = m.Marshal([]Genre{}, RootName("genres"))
	if err != nil {
		t.Fatal(err)
	}
	if want := "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n<genres />\n"; string(d) != want {
		t.Errorf("got %q", d)
	}
	out = nil
	if err := m.Unmarshal(d, &out); err != nil {
		t.Fatal(err)
	}
	if out == nil || len(out) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", out)
	}
}

func TestMissingMembersUntouched(t *testing.T) {
	m := testMapper(t)
	doc := `<items><actor><firstName>Ann</firstName><lastName></lastName><unknown>x</unknown></actor></items>`
	var got []*Actor
	if err := m.Unmarshal([]byte(doc), &got); err != nil {
		t.Fatal(err)
	}
	want := []*Actor{{Person: Person{FirstName: "Ann"}}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Error(diff)
	}
}

func TestReadErrors(t *testing.T) {
	m := testMapper(t)
	cases := []struct {
		name string
		doc  string
		err  error
		path string
	}{
		{
			name: "malformed",
			doc:  "<items><actor>",
			err:  ErrMalformedDocument,
		},
		{
			name: "missing discriminator",
			doc:  "<items><actor><roles><role><work><name>x</name></work></role></roles></actor></items>",
			err:  ErrAbstractTypeUnresolved,
			path: "$.actor.roles.role.work",
		},
		{
			name: "unknown discriminator",
			doc:  "<items><actor><roles><role><work><_type>gomap.Opera</_type></work></role></roles></actor></items>",
			err:  ErrUnknownType,
			path: "$.actor.roles.role.work",
		},
		{
			name: "discriminator of wrong kind",
			doc:  "<items><actor><roles><role><work><_type>gomap.Genre</_type></work></role></roles></actor></items>",
			err:  ErrUnknownType,
			path: "$.actor.roles.role.work",
		},
		{
			name: "unknown superfluous discriminator",
			doc:  "<items><actor><_type>gomap.Nobody</_type></actor></items>",
			err:  ErrUnknownType,
			path: "$.actor",
		},
		{
			name: "bad integer",
			doc:  "<items><actor><birthYear>abc</birthYear></actor></items>",
			err:  ErrParse,
			path: "$.actor.birthYear",
		},
		{
			name: "overflow",
			doc:  "<items><actor><birthYear>70000</birthYear></actor></items>",
			err:  ErrParse,
			path: "$.actor.birthYear",
		},
		{
			name: "bad bool",
			doc:  "<items><actor><roles><role><isMain>yes please</isMain></role></roles></actor></items>",
			err:  ErrParse,
			path: "$.actor.roles.role.isMain",
		},
		{
			name: "bad enum",
			doc:  "<items><actor><level>middle</level></actor></items>",
			err:  ErrParse,
			path: "$.actor.level",
		},
		{
			name: "text for record",
			doc:  "<items><actor><roles>oops</roles></actor></items>",
			err:  ErrParse,
			path: "$.actor.roles",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := []*Actor{{Person: Person{FirstName: "keep"}}}
			err := m.Unmarshal([]byte(c.doc), &got)
			if !errors.Is(err, c.err) {
				t.Fatalf("expected %v, got %v", c.err, err)
			}
			if len(got) != 1 || got[0].FirstName != "keep" {
				t.Errorf("destination modified on failure")
			}
			if c.path == "" {
				return
			}
			var ue *UnmarshalError
			var te *TypeError
			switch {
			case errors.As(err, &ue):
				if ue.FieldPath != c.path {
					t.Errorf("path %q, want %q", ue.FieldPath, c.path)
				}
			case errors.As(err, &te):
				if te.FieldPath != c.path {
					t.Errorf("path %q, want %q", te.FieldPath, c.path)
				}
			default:
				t.Errorf("unstructured error %v", err)
			}
		})
	}
}

func TestSuperfluousDiscriminator(t *testing.T) {
	m := testMapper(t)
	doc := "<items><genre><_type>gomap.Spectacle</_type><name>Drama</name></genre></items>"
	var got []Genre
	if err := m.Unmarshal([]byte(doc), &got); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]Genre{{Name: "Drama"}}, got); diff != "" {
		t.Error(diff)
	}
}

func TestWriteErrors(t *testing.T) {
	m := testMapper(t)
	_, err := m.Marshal([]Role{{Work: &Unregistered{Name: "x"}}})
	if !errors.Is(err, ErrUnknownType) {
		t.Errorf("expected unknown type, got %v", err)
	}
	var me *MarshalError
	if !errors.As(err, &me) || me.FieldPath != "items[0].work" {
		t.Errorf("expected marshal error at items[0].work, got %v", err)
	}
	if _, err := m.Marshal([]WithMap{{M: map[string]string{"a": "b"}}}); !errors.Is(err, ErrUnsupportedType) {
		t.Errorf("expected unsupported type, got %v", err)
	}
	if _, err := m.Marshal(Genre{}); !errors.Is(err, ErrUnsupportedType) {
		t.Errorf("expected unsupported root, got %v", err)
	}
	var notPtr []Genre
	if err := m.Unmarshal([]byte("<items />"), notPtr); !errors.Is(err, ErrUnsupportedType) {
		t.Errorf("expected unsupported destination, got %v", err)
	}
}

func chain(n int) *Chain {
	var c *Chain
	for i := range n {
		c = &Chain{Name: strings.Repeat("x", i%3), Next: c}
	}
	return c
}

func TestGraphTooDeep(t *testing.T) {
	m := testMapper(t)
	_, err := m.Marshal([]*Chain{chain(DefaultMaxDepth + 10)})
	if !errors.Is(err, ErrGraphTooDeep) {
		t.Fatalf("expected graph too deep, got %v", err)
	}
	cyclic := &Chain{Name: "loop"}
	cyclic.Next = cyclic
	if _, err := m.Marshal([]*Chain{cyclic}, MaxDepth(16)); !errors.Is(err, ErrGraphTooDeep) {
		t.Fatalf("expected graph too deep for cycle, got %v", err)
	}

	d, err := m.Marshal([]*Chain{chain(10)})
	if err != nil {
		t.Fatal(err)
	}
	var got []*Chain
	if err := m.Unmarshal(d, &got, MaxDepth(8)); !errors.Is(err, ErrGraphTooDeep) {
		t.Fatalf("expected graph too deep on read, got %v", err)
	}
	if err := m.Unmarshal(d, &got); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]*Chain{chain(10)}, got); diff != "" {
		t.Error(diff)
	}
}

func TestNeedsTag(t *testing.T) {
	work := reflect.TypeOf((*Work)(nil)).Elem()
	movie := reflect.TypeOf(Movie{})
	cases := []struct {
		declared, actual reflect.Type
		mode             schema.Mode
		want             bool
	}{
		{work, movie, schema.Polymorphic, true},
		{work, movie, schema.DeclaredOnly, false},
		{movie, movie, schema.Polymorphic, false},
		{reflect.PointerTo(movie), movie, schema.Polymorphic, false},
		{reflect.TypeOf(Person{}), reflect.TypeOf(Actor{}), schema.Polymorphic, true},
	}
	for i, c := range cases {
		if got := NeedsTag(c.declared, c.actual, c.mode); got != c.want {
			t.Errorf("%d: got %v", i, got)
		}
	}
}

func TestResolveType(t *testing.T) {
	m := testMapper(t)
	work := reflect.TypeOf((*Work)(nil)).Elem()
	got, err := m.ResolveType(work, "gomap.Spectacle", true)
	if err != nil || got != reflect.TypeOf(Spectacle{}) {
		t.Errorf("got %v %v", got, err)
	}
	if _, err := m.ResolveType(work, "", false); !errors.Is(err, ErrAbstractTypeUnresolved) {
		t.Errorf("got %v", err)
	}
	got, err = m.ResolveType(reflect.TypeOf(&Genre{}), "", false)
	if err != nil || got != reflect.TypeOf(Genre{}) {
		t.Errorf("got %v %v", got, err)
	}
}

func TestItemName(t *testing.T) {
	cases := []struct {
		ty   reflect.Type
		want string
	}{
		{reflect.TypeOf(&Actor{}), "actor"},
		{reflect.TypeOf((*Work)(nil)).Elem(), "work"},
		{reflect.TypeOf(""), "string"},
		{reflect.TypeOf(struct{}{}), "item"},
		{reflect.TypeOf(Level(0)), "level"},
	}
	for _, c := range cases {
		if got := itemName(c.ty); got != c.want {
			t.Errorf("%s: got %q want %q", c.ty, got, c.want)
		}
	}
}
