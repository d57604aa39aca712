package model

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

const (
	gridPosBlock = "  "
	colorReset   = "\x1b[0m"
	clearScreen  = "\x1b[H\x1b[2J"
)

// TerminalRenderer draws color buffers as 24-bit ANSI background blocks
type TerminalRenderer struct {
	// Out defaults to os.Stdout
	Out io.Writer
}

func (r *TerminalRenderer) out() io.Writer {
	if r.Out == nil {
		return os.Stdout
	}
	return r.Out
}

// Display renders the buffer, two columns per cell
func (r *TerminalRenderer) Display(buf *ColorBuffer) {
	w := bufio.NewWriter(r.out())
	for y := range buf.Height {
		for x := range buf.Width {
			cr, cg, cb := buf.At(x, y)
			fmt.Fprintf(w, "\x1b[48;2;%d;%d;%dm%s", to8(cr), to8(cg), to8(cb), gridPosBlock)
		}
		fmt.Fprintln(w, colorReset)
	}
	if err := w.Flush(); err != nil {
		fmt.Println("Error writing frame:", err)
	}
}

// Clear homes the cursor and clears the screen
func (r *TerminalRenderer) Clear() {
	if _, err := io.WriteString(r.out(), clearScreen); err != nil {
		fmt.Println("Error clearing terminal:", err)
	}
}

func to8(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}
