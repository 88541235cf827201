package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	isatty "github.com/mattn/go-isatty"

	"github.com/djeday123/bytepair/stats"
	"github.com/djeday123/bytepair/tokenizer"
)

func shouldWeColorize(wantColor string) bool {
	switch wantColor {
	case "yes":
		return true
	case "no":
		return false
	default:
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}
}

func newTable(out io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(out)

	// colorize output, use unicode box characters
	fancy := shouldWeColorize(cfg.Report.Color)

	colorOptions := table.ColorOptions{}
	if fancy {
		colorOptions.Header = text.Colors{text.Italic}
		colorOptions.Border = text.Colors{text.FgHiBlack}
		colorOptions.Separator = text.Colors{text.FgHiBlack}
	}

	box := table.StyleBoxDefault
	if fancy {
		box = table.StyleBoxRounded
	}

	t.SetStyle(table.Style{
		Box:     box,
		Color:   colorOptions,
		Format:  table.FormatOptions{},
		HTML:    table.DefaultHTMLOptions,
		Options: table.OptionsDefault,
		Title:   table.TitleOptionsDefault,
	})

	return t
}

func renderReportTable(out io.Writer, r stats.Report) {
	t := newTable(out)
	t.AppendHeader(table.Row{"Metric", "Value"})
	t.AppendRow(table.Row{"Input bytes", r.InputBytes})
	t.AppendRow(table.Row{"Tokens", r.Tokens})
	t.AppendRow(table.Row{"Distinct tokens", r.Distinct})
	t.AppendRow(table.Row{"Compression", fmt.Sprintf("%.2fx", r.Ratio)})
	t.AppendRow(table.Row{"Entropy", fmt.Sprintf("%.2f bits", r.EntropyBits)})
	t.AppendRow(table.Row{"Mean token length", fmt.Sprintf("%.2f bytes", r.MeanTokenLen)})
	t.Render()
}

func renderTopTokensTable(out io.Writer, r stats.Report) {
	t := newTable(out)
	t.AppendHeader(table.Row{"ID", "Token", "Count"})
	for _, tc := range r.Top {
		t.AppendRow(table.Row{tc.ID, tokenizer.SafeString(tc.Bytes), tc.Count})
	}
	t.Render()
}
