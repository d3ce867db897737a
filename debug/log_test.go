package debug

import (
	"testing"

	"github.com/signadot/troupe/ir"
)

func TestRender(t *testing.T) {
	s, err := render(ir.FromList("genres", []*ir.Node{ir.FromText("genre", "x")}))
	if err != nil {
		t.Fatal(err)
	}
	if want := "<genres>\n  <genre>x</genre>\n</genres>"; s != want {
		t.Errorf("got %q", s)
	}
}

func TestBoolEnv(t *testing.T) {
	t.Setenv("TROUPE_TEST_FLAG", "true")
	if !boolEnv("TROUPE_TEST_FLAG") {
		t.Error("expected true")
	}
	if boolEnv("TROUPE_TEST_UNSET") {
		t.Error("expected false")
	}
}
