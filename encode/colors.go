package encode

import (
	"strings"

	"github.com/fatih/color"
	"github.com/signadot/troupe/ir"
)

type Colorable struct {
	Type ir.Type
	Attr ColorAttr
}

type ColorAttr int

const (
	NameColor ColorAttr = iota
	TextColor
	SepColor
	HeaderColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, t := range ir.Types() {
		able := Colorable{Type: t, Attr: SepColor}
		colors.Map[able] = color.RGB(96, 96, 96).SprintfFunc()
		able.Attr = HeaderColor
		colors.Map[able] = color.BlueString
	}
	able := Colorable{Attr: NameColor}

	able.Type = ir.TextType
	colors.Map[able] = color.RGB(196, 96, 16).SprintfFunc()
	able.Attr = TextColor
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()

	able.Attr = NameColor
	able.Type = ir.RecordType
	colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()
	able.Type = ir.ListType
	colors.Map[able] = color.RGB(196, 168, 128).SprintfFunc()
	able.Type = ir.ElementType
	colors.Map[able] = color.RGB(168, 0, 196).SprintfFunc()

	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(t ir.Type, a ColorAttr, s string) string {
	return c.Get(t, a)(s)
}

func (c *Colors) Get(t ir.Type, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Type: t, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
