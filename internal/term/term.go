// Package term writes frames to an ANSI terminal and reports its size.
package term

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	xterm "golang.org/x/term"
)

const (
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// ErrNoTerminal is returned when the output is not a terminal or its size
// cannot be read.
var ErrNoTerminal = errors.New("term: unable to get terminal size")

// Size returns the column and row count of the terminal behind f.
func Size(f *os.File) (int, int, error) {
	w, h, err := xterm.GetSize(int(f.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrNoTerminal, err)
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("%w: reported %dx%d", ErrNoTerminal, w, h)
	}
	return w, h, nil
}

// Screen queues ANSI commands in a buffer; nothing reaches the terminal
// until Flush.
type Screen struct {
	w *bufio.Writer
}

func NewScreen(w io.Writer) *Screen {
	return &Screen{w: bufio.NewWriterSize(w, 64*1024)}
}

func (s *Screen) Clear()      { s.w.WriteString(clearScreen) }
func (s *Screen) HideCursor() { s.w.WriteString(hideCursor) }
func (s *Screen) ShowCursor() { s.w.WriteString(showCursor) }

// MoveTo positions the cursor at a zero-based column and row.
func (s *Screen) MoveTo(col, row int) {
	var buf [24]byte
	b := append(buf[:0], "\033["...)
	b = strconv.AppendInt(b, int64(row+1), 10)
	b = append(b, ';')
	b = strconv.AppendInt(b, int64(col+1), 10)
	b = append(b, 'H')
	s.w.Write(b)
}

func (s *Screen) WriteString(str string) { s.w.WriteString(str) }

// Flush writes everything queued since the last flush. bufio keeps the
// first write error, so an error here covers every queued command.
func (s *Screen) Flush() error {
	return s.w.Flush()
}
