package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the dropzone ASCII banner to w.
func PrintBanner(w io.Writer) {
	p := termenv.ColorProfile()
	lines := []struct {
		text, color string
	}{
		{"      _                                      ", "#818cf8"},
		{"   __| |_ __ ___  _ __  _______  _ __   ___ ", "#a78bfa"},
		{"  / _` | '__/ _ \\| '_ \\|_  / _ \\| '_ \\ / _ \\", "#c084fc"},
		{" | (_| | | | (_) | |_) |/ / (_) | | | |  __/", "#e879f9"},
		{"  \\__,_|_|  \\___/| .__//___\\___/|_| |_|\\___|", "#f472b6"},
		{"                 |_|                         ", "#fb7185"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}
