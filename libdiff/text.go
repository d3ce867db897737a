package libdiff

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Hunk is a run of lines sharing an op. Lines keep their newlines.
type Hunk struct {
	Op    Op
	Lines []string
}

// Same reports whether a and b are identical.
func Same(a, b string) bool { return a == b }

// Lines diffs a and b line by line.
func Lines(a, b string) []Hunk {
	if Same(a, b) {
		if a == "" {
			return nil
		}
		return []Hunk{{Op: Equal, Lines: splitLines(a)}}
	}
	dmp := diffpatch.New()
	ra, rb, lines := dmp.DiffLinesToRunes(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMainRunes(ra, rb, false), lines)
	res := make([]Hunk, 0, len(diffs))
	for _, d := range diffs {
		h := Hunk{Lines: splitLines(d.Text)}
		switch d.Type {
		case diffpatch.DiffInsert:
			h.Op = Insert
		case diffpatch.DiffDelete:
			h.Op = Delete
		}
		res = append(res, h)
	}
	return res
}

func splitLines(s string) []string {
	return strings.SplitAfter(strings.TrimSuffix(s, "\n"), "\n")
}

type unifiedOpts struct {
	context  int
	from, to string
	color    bool
}

type UnifiedOption func(*unifiedOpts)

// Context sets the number of unchanged lines shown around a change,
// 3 by default.
func Context(n int) UnifiedOption {
	return func(o *unifiedOpts) { o.context = max(n, 0) }
}

// Labels names the two sides in the header.
func Labels(from, to string) UnifiedOption {
	return func(o *unifiedOpts) { o.from, o.to = from, to }
}

// Color colours deleted lines red, inserted lines green and hunk headers
// cyan.
func Color(v bool) UnifiedOption {
	return func(o *unifiedOpts) { o.color = v }
}

type line struct {
	op   Op
	text string
	a, b int
}

// Unified renders the difference of a and b in unified diff format. It
// returns "" when they are the same.
func Unified(a, b string, opts ...UnifiedOption) string {
	o := &unifiedOpts{context: 3, from: "a", to: "b"}
	for _, opt := range opts {
		opt(o)
	}
	if Same(a, b) {
		return ""
	}
	var ls []line
	ai, bi := 1, 1
	for _, h := range Lines(a, b) {
		for _, t := range h.Lines {
			ls = append(ls, line{op: h.Op, text: strings.TrimSuffix(t, "\n"), a: ai, b: bi})
			switch h.Op {
			case Equal:
				ai++
				bi++
			case Delete:
				ai++
			case Insert:
				bi++
			}
		}
	}

	del, ins, hdr := fmt.Sprint, fmt.Sprint, fmt.Sprint
	if o.color {
		del = color.New(color.FgRed).Sprint
		ins = color.New(color.FgGreen).Sprint
		hdr = color.New(color.FgCyan).Sprint
	}
	buf := &strings.Builder{}
	buf.WriteString(del("--- "+o.from) + "\n")
	buf.WriteString(ins("+++ "+o.to) + "\n")
	for i := 0; i < len(ls); {
		if ls[i].op == Equal {
			i++
			continue
		}
		start := max(i-o.context, 0)
		end := i
		for end < len(ls) {
			if ls[end].op != Equal {
				end++
				continue
			}
			run := end
			for run < len(ls) && ls[run].op == Equal {
				run++
			}
			if run == len(ls) || run-end > 2*o.context {
				end = min(end+o.context, len(ls))
				break
			}
			end = run
		}
		var na, nb int
		for _, l := range ls[start:end] {
			if l.op != Insert {
				na++
			}
			if l.op != Delete {
				nb++
			}
		}
		buf.WriteString(hdr(fmt.Sprintf("@@ -%s +%s @@", span(ls[start].a, na), span(ls[start].b, nb))) + "\n")
		for _, l := range ls[start:end] {
			switch l.op {
			case Equal:
				buf.WriteString(" " + l.text + "\n")
			case Delete:
				buf.WriteString(del("-"+l.text) + "\n")
			case Insert:
				buf.WriteString(ins("+"+l.text) + "\n")
			}
		}
		i = end
	}
	return buf.String()
}

func span(start, n int) string {
	if n == 0 {
		start--
	}
	if n == 1 {
		return fmt.Sprint(start)
	}
	return fmt.Sprintf("%d,%d", start, n)
}

// Chars renders the character level difference of two texts as
// "[-deleted-]{+inserted+}" markup.
func Chars(a, b string) string {
	dmp := diffpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(a, b, false))
	buf := &strings.Builder{}
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffEqual:
			buf.WriteString(d.Text)
		case diffpatch.DiffDelete:
			buf.WriteString("[-" + d.Text + "-]")
		case diffpatch.DiffInsert:
			buf.WriteString("{+" + d.Text + "+}")
		}
	}
	return buf.String()
}
