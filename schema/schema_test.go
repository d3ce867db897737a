package schema

import (
	"errors"
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type named interface{ Label() string }

type base struct{}

type Base struct {
	FirstName string
	LastName  string
	hidden    int
}

func (b *Base) Label() string { return b.FirstName }

type Derived struct {
	Base
	Roles  []string
	Secret string `troupe:"-"`
	Boss   named  `troupe:"declared"`
	Tagged named  `troupe:"declared=schema.Base"`
	ID     string `troupe:"field=id"`
	base
}

type Collide struct {
	Base
	FirstName string
}

type Reserved struct {
	T string `troupe:"field=_type"`
}

func TestParseStructTag(t *testing.T) {
	cases := []struct {
		in   string
		want map[string]string
	}{
		{"", map[string]string{}},
		{"-", map[string]string{"-": ""}},
		{"declared", map[string]string{"declared": ""}},
		{"declared=model.Person,field=boss", map[string]string{"declared": "model.Person", "field": "boss"}},
		{"field='a, b'", map[string]string{"field": "a, b"}},
		{` field = "x y" , - `, map[string]string{"field": "x y", "-": ""}},
	}
	for _, c := range cases {
		got, err := ParseStructTag(c.in)
		if err != nil {
			t.Fatalf("%q: %v", c.in, err)
		}
		if diff := cmp.Diff(c.want, got); diff != "" {
			t.Errorf("%q (-want +got):\n%s", c.in, diff)
		}
	}
	for _, bad := range []string{"field='x", "=x", "declared declared", "field=a,field=b", "omitempty"} {
		if _, err := ParseStructTag(bad); !errors.Is(err, ErrBadTag) {
			t.Errorf("%q: expected bad tag, got %v", bad, err)
		}
	}
}

func TestDescribe(t *testing.T) {
	c := NewCatalog()
	ms, err := c.Describe(reflect.TypeOf(&Derived{}))
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, m := range ms {
		names = append(names, m.FieldName)
	}
	want := []string{"firstName", "lastName", "roles", "secret", "boss", "tagged", "id"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Fatalf("members (-want +got):\n%s", diff)
	}
	if !ms[3].Excluded {
		t.Error("secret should be excluded")
	}
	if ms[4].Mode != DeclaredOnly || ms[4].Declared != nil {
		t.Errorf("boss: %+v", ms[4])
	}
	if ms[5].DeclaredName != "schema.Base" {
		t.Errorf("tagged: %+v", ms[5])
	}
	if diff := cmp.Diff([]int{0, 1}, ms[1].Index); diff != "" {
		t.Errorf("index: %s", diff)
	}
	again, err := c.Describe(reflect.TypeOf(Derived{}))
	if err != nil {
		t.Fatal(err)
	}
	if &again[0] != &ms[0] {
		t.Error("expected cached description")
	}
}

func TestDescribeErrors(t *testing.T) {
	c := NewCatalog()
	if _, err := c.Describe(reflect.TypeOf(Collide{})); !errors.Is(err, ErrMemberCollision) {
		t.Errorf("expected collision, got %v", err)
	}
	if _, err := c.Describe(reflect.TypeOf(Reserved{})); !errors.Is(err, ErrMemberCollision) {
		t.Errorf("expected collision, got %v", err)
	}
	if _, err := c.Describe(reflect.TypeOf(3)); !errors.Is(err, ErrNotRecord) {
		t.Errorf("expected not record, got %v", err)
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(&Base{}); err != nil {
		t.Fatal(err)
	}
	if err := r.Register(Base{}); err != nil {
		t.Fatalf("re-registering the same type: %v", err)
	}
	if err := r.RegisterAs("schema.Base", Derived{}); !errors.Is(err, ErrDuplicateName) {
		t.Errorf("expected duplicate name, got %v", err)
	}
	if err := r.Register(Collide{}); !errors.Is(err, ErrMemberCollision) {
		t.Errorf("expected collision, got %v", err)
	}
	if err := r.Register(Derived{}); err != nil {
		t.Fatal(err)
	}
	bt, ok := r.Lookup("schema.Base")
	if !ok || bt != reflect.TypeOf(Base{}) {
		t.Fatalf("lookup: %v %v", bt, ok)
	}
	name, ok := r.NameOf(reflect.TypeOf(&Derived{}))
	if !ok || name != "schema.Derived" {
		t.Errorf("name of: %q %v", name, ok)
	}
	if diff := cmp.Diff([]string{"schema.Base", "schema.Derived"}, r.Names()); diff != "" {
		t.Error(diff)
	}
}

func TestDeclaredType(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(Base{}, Derived{})
	ms, err := r.Describe(reflect.TypeOf(Derived{}))
	if err != nil {
		t.Fatal(err)
	}
	boss, tagged := ms[4], ms[5]
	if _, err := r.DeclaredType(boss); !errors.Is(err, ErrNoDeclaredType) {
		t.Errorf("expected no declared type, got %v", err)
	}
	if err := r.Bind((*named)(nil), Base{}); err != nil {
		t.Fatal(err)
	}
	got, err := r.DeclaredType(boss)
	if err != nil || got != reflect.TypeOf(Base{}) {
		t.Errorf("boss: %v %v", got, err)
	}
	got, err = r.DeclaredType(tagged)
	if err != nil || got != reflect.TypeOf(Base{}) {
		t.Errorf("tagged: %v %v", got, err)
	}
	if err := r.Bind((*named)(nil), Reserved{}); !errors.Is(err, ErrBadBinding) {
		t.Errorf("expected bad binding, got %v", err)
	}
}

func TestLowerFirst(t *testing.T) {
	for in, want := range map[string]string{"": "", "Name": "name", "isMain": "isMain", "ÉtéX": "étéX"} {
		if got := LowerFirst(in); got != want {
			t.Errorf("%q: got %q", in, got)
		}
	}
}
