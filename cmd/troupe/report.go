package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/signadot/troupe/gomap"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/scott-cotton/cli"
)

func report(cfg *ReportConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Report.Parse(cc, args)
	if err != nil {
		cfg.Report.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.List {
		return listReports(cfg, cc.Out)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: report requires a report name, see report -l", cli.ErrUsage)
	}
	d := findReport(args[0])
	if d == nil {
		return fmt.Errorf("%w: no report %q, see report -l", cli.ErrUsage, args[0])
	}
	args = args[1:]
	if len(args) < len(d.args) || len(args) > len(d.args)+1 {
		return fmt.Errorf("%w: usage: report %s [file]", cli.ErrUsage, d.synopsis())
	}
	file := "-"
	if len(args) > len(d.args) {
		file = args[len(d.args)]
	}
	s := cfg.newStore(file)
	if file == "-" {
		err = s.Load(cc.In)
	} else {
		err = s.LoadFile(file)
	}
	if err != nil {
		return err
	}
	theLog.Debug("loaded", "file", file, "actors", s.Len())
	rows, table, err := d.run(s.Items(), args[:len(d.args)])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	if cfg.structured() {
		opts := append(cfg.mapOpts(cc.Out), gomap.RootName(d.name))
		return gomap.Serialize(cc.Out, rows, opts...)
	}
	return renderTable(cfg.MainConfig, cc.Out, d.synopsis(), table)
}

// structured reports whether the rows should be written as a document
// rather than a table.
func (cfg *ReportConfig) structured() bool {
	return cfg.OutFormat != nil || cfg.shorthand() != nil || (cfg.Out != "" && cfg.Out != "-")
}

func listReports(cfg *ReportConfig, w io.Writer) error {
	t := [][]string{{"Report", "Description"}}
	for _, d := range reports {
		t = append(t, []string{d.synopsis(), d.desc})
	}
	return renderTable(cfg.MainConfig, w, "reports", t)
}

func renderTable(cfg *MainConfig, w io.Writer, title string, table [][]string) error {
	r := lipgloss.NewRenderer(w)
	if cfg.useColor(w) {
		r.SetColorProfile(termenv.ANSI256)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	var (
		titleStyle  = r.NewStyle().Bold(true).Foreground(lipgloss.Color("36"))
		headerStyle = r.NewStyle().Bold(true).Foreground(lipgloss.Color("245"))
		cellStyle   = r.NewStyle().Foreground(lipgloss.Color("255"))
		dimStyle    = r.NewStyle().Foreground(lipgloss.Color("240"))
	)
	widths := make([]int, len(table[0]))
	for _, row := range table {
		for j, c := range row {
			widths[j] = max(widths[j], lipgloss.Width(c))
		}
	}
	buf := &strings.Builder{}
	buf.WriteString(titleStyle.Render(title) + "\n")
	for i, row := range table {
		style := cellStyle
		if i == 0 {
			style = headerStyle
		}
		cells := make([]string, len(row))
		for j, c := range row {
			pad := widths[j] - lipgloss.Width(c)
			if j == len(row)-1 {
				pad = 0
			}
			cells[j] = style.Render(c) + strings.Repeat(" ", pad)
		}
		buf.WriteString(strings.Join(cells, "  ") + "\n")
	}
	buf.WriteString(dimStyle.Render(fmt.Sprintf("%d rows", len(table)-1)) + "\n")
	_, err := io.WriteString(w, buf.String())
	return err
}
