package ui

import (
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	minWidth      = 20
)

// Capability describes what the output terminal can display. It is
// resolved once at start-up and handed to New.
type Capability struct {
	Enhanced bool
	Width    int
	Height   int
}

// Detect inspects out and the environment. forcePlain disables enhanced
// output even on a capable terminal.
func Detect(out *os.File, forcePlain bool) Capability {
	fd := out.Fd()
	tty := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)

	c := detect(tty, os.Getenv("TERM"), forcePlain)
	if tty {
		if w, h, err := term.GetSize(int(fd)); err == nil && w > 0 && h > 0 {
			c.Width, c.Height = w, h
		}
	}
	return c
}

func detect(tty bool, termName string, forcePlain bool) Capability {
	return Capability{
		Enhanced: tty && !forcePlain && termName != "dumb",
		Width:    defaultWidth,
		Height:   defaultHeight,
	}
}
