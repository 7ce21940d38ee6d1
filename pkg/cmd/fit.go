package cmd

import (
	"io"
	"os"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/anivanovic/timerbar/pkg/timerbar"
)

const defaultTermWidth = 80

// terminalWidth returns the column count of w when it is a terminal.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return defaultTermWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultTermWidth
	}
	return width
}

// fitWidth returns the largest bar width whose render fits in termWidth
// columns, keeping the last column free so the line never wraps.
func fitWidth(termWidth int, cfg timerbar.Config) int {
	decoration := runewidth.StringWidth(cfg.PrefixText + cfg.LeftBorder + cfg.RightBorder + cfg.SuffixText)
	available := termWidth - decoration - 1
	if available <= 0 {
		return 0
	}

	glyph := max(glyphWidth(cfg.BlankGlyph), glyphWidth(cfg.FilledGlyph), 1)
	return available / glyph
}

func glyphWidth(s string) int {
	widest := 0
	for _, r := range s {
		widest = max(widest, runewidth.RuneWidth(r))
	}
	return widest
}
