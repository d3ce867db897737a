package encode

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/troupe/format"
	"github.com/signadot/troupe/ir"
	"github.com/signadot/troupe/parse"
)

func sample(t *testing.T) *ir.Node {
	t.Helper()
	person, err := ir.FromRecord("director", []*ir.Node{
		ir.FromText("firstName", "Clint"),
		ir.FromText("lastName", "Eastwood <&>"),
		ir.FromText("patronymic", ""),
	})
	if err != nil {
		t.Fatal(err)
	}
	movie, err := ir.FromRecord("movie", []*ir.Node{
		ir.FromText(ir.TypeField, "model.Movie"),
		ir.FromText("name", "Gran Torino"),
		ir.FromList("genres", []*ir.Node{}),
		person,
	})
	if err != nil {
		t.Fatal(err)
	}
	return ir.FromList("items", []*ir.Node{movie})
}

func TestEncodeXML(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := Encode(sample(t), buf); err != nil {
		t.Fatal(err)
	}
	want := `<?xml version="1.0" encoding="UTF-8"?>
<items>
  <movie>
    <_type>model.Movie</_type>
    <name>Gran Torino</name>
    <genres />
    <director>
      <firstName>Clint</firstName>
      <lastName>Eastwood &lt;&amp;&gt;</lastName>
      <patronymic></patronymic>
    </director>
  </movie>
</items>
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeXMLWireIndent(t *testing.T) {
	node := ir.FromList("genres", []*ir.Node{ir.FromText("genre", "a")})
	got := MustString(node, EncodeWire(true))
	if want := "<genres><genre>a</genre></genres>"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
	got = MustString(node, Indent(4))
	if want := "<genres>\n    <genre>a</genre>\n</genres>"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestEncodeDeterministic(t *testing.T) {
	for _, f := range format.AllFormats() {
		a := &bytes.Buffer{}
		b := &bytes.Buffer{}
		if err := Encode(sample(t), a, EncodeFormat(f)); err != nil {
			t.Fatal(err)
		}
		if err := Encode(sample(t), b, EncodeFormat(f)); err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(a.Bytes(), b.Bytes()) {
			t.Errorf("%s output differs between runs", f)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	want := MustString(sample(t))
	for _, f := range format.AllFormats() {
		buf := &bytes.Buffer{}
		if err := Encode(sample(t), buf, EncodeFormat(f)); err != nil {
			t.Fatal(err)
		}
		node, err := parse.Parse(buf.Bytes(), parse.ParseFormat(f))
		if err != nil {
			t.Fatalf("%s: %v\n%s", f, err, buf.String())
		}
		if f.IsXML() {
			// markup parsing cannot tell an empty list from an empty leaf
			node.Children[0].Get("genres").Type = ir.ListType
		}
		if diff := cmp.Diff(want, MustString(node)); diff != "" {
			t.Errorf("%s round trip (-want +got):\n%s", f, diff)
		}
	}
}

func TestEscapedTextRoundTrip(t *testing.T) {
	texts := []string{"tab\there", "a\r\nb", "two\nlines\n", "\x01ctl", "nbsp\u00a0", "  pad  ", "007", "null"}
	items := make([]*ir.Node, len(texts))
	for i, s := range texts {
		items[i] = ir.FromText("name", s)
	}
	for _, f := range format.AllFormats() {
		if f.IsXML() {
			continue
		}
		for _, wire := range []bool{false, true} {
			buf := &bytes.Buffer{}
			if err := Encode(ir.FromList("names", items), buf, EncodeFormat(f), EncodeWire(wire)); err != nil {
				t.Fatal(err)
			}
			node, err := parse.Parse(buf.Bytes(), parse.ParseFormat(f))
			if err != nil {
				t.Fatalf("%s: %v\n%s", f, err, buf.String())
			}
			got := make([]string, len(node.Children))
			for i, c := range node.Children {
				got[i] = c.Text
			}
			if diff := cmp.Diff(texts, got); diff != "" {
				t.Errorf("%s wire=%t (-want +got):\n%s\n%s", f, wire, diff, buf.String())
			}
		}
	}
}

func TestEncodeYAMLQuotesControls(t *testing.T) {
	node := ir.FromList("names", []*ir.Node{ir.FromText("name", "tab\there")})
	got := MustString(node, EncodeFormat(format.YAMLFormat))
	if want := `"tab\there"`; !strings.Contains(got, want) {
		t.Errorf("%q not quoted as %s", got, want)
	}
}

func TestEncodeXMLRejectsUnrepresentable(t *testing.T) {
	for _, s := range []string{"\x01ctl", "bad\xffutf8", "\ufffe"} {
		node := ir.FromList("names", []*ir.Node{ir.FromText("name", s)})
		err := Encode(node, &bytes.Buffer{})
		if !errors.Is(err, ErrEncoding) {
			t.Errorf("%q: got %v want ErrEncoding", s, err)
		}
	}
	node := ir.FromList("names", []*ir.Node{ir.FromText("name", "tab\t\r\n\ufffd")})
	if err := Encode(node, &bytes.Buffer{}); err != nil {
		t.Errorf("valid text rejected: %v", err)
	}
}

func TestEncodeJSON(t *testing.T) {
	node := ir.FromList("genres", []*ir.Node{ir.FromText("genre", "a")})
	got := MustString(node, EncodeFormat(format.JSONFormat), EncodeWire(true))
	if want := `{"genres":[{"genre":"a"}]}`; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestColors(t *testing.T) {
	c := NewColors()
	if c.Get(ir.TextType, NameColor) == nil {
		t.Fatal("missing name color")
	}
	if got := (&Colors{Default: colorDefault}).Color(ir.TextType, TextColor, "x"); got != "x" {
		t.Errorf("default color altered text: %q", got)
	}
}
