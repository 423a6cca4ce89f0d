// Package diagfmt renders tokens and lexical errors for the CLI.
package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"plexer/internal/diag"
	"plexer/internal/source"
)

// Pretty форматирует ошибки в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждой ошибки печатает:
// <path>:<line>:<col>: error: <message>
// затем до opts.Context строк контекста, строку с ошибкой и подчёркивание
// ^~~~ по span. Цвет включается опцией.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	red := color.New(color.FgRed, color.Bold)
	errLabel := "error:"
	if opts.Color {
		errLabel = red.Sprint(errLabel)
	}

	for _, d := range bag.Items() {
		file := fs.Get(d.Span.File)
		start, _ := fs.Resolve(d.Span)

		fmt.Fprintf(w, "%s:%d:%d: %s %s\n", file.Path, start.Line, start.Col, errLabel, d.Message)

		// строка ошибки с контекстом перед ней
		first := int(start.Line) - opts.Context
		if first < 1 {
			first = 1
		}
		for ln := first; ln <= int(start.Line); ln++ {
			fmt.Fprintf(w, "%5d | %s\n", ln, file.GetLine(uint32(ln)))
		}

		// каретка под ошибочным фрагментом; ширина префикса считается в
		// display-колонках, иначе wide руны сдвигают подчёркивание
		lineText := file.GetLine(start.Line)
		col := int(start.Col) - 1
		if col > len(lineText) {
			col = len(lineText)
		}
		padWidth := runewidth.StringWidth(lineText[:col])

		n := int(d.Span.Len())
		if rest := len(lineText) - col; n > rest {
			n = rest
		}
		if n < 1 {
			n = 1
		}
		underline := "^" + strings.Repeat("~", n-1)
		if opts.Color {
			underline = red.Sprint(underline)
		}
		fmt.Fprintf(w, "      | %s%s\n", strings.Repeat(" ", padWidth), underline)
	}

	if bag.Dropped() > 0 {
		fmt.Fprintf(w, "... and %d more errors\n", bag.Dropped())
	}
}
