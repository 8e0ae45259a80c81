package render

import (
	"github.com/mattn/go-runewidth"
	termbox "github.com/nsf/termbox-go"
)

var termboxColors = map[string]termbox.Attribute{
	"default": termbox.ColorDefault,
	"black":   termbox.ColorBlack,
	"red":     termbox.ColorRed,
	"green":   termbox.ColorGreen,
	"yellow":  termbox.ColorYellow,
	"blue":    termbox.ColorBlue,
	"magenta": termbox.ColorMagenta,
	"cyan":    termbox.ColorCyan,
	"white":   termbox.ColorWhite,
}

// TermboxColor maps a color name to a termbox attribute. Unknown names use
// the terminal default.
func TermboxColor(name string) termbox.Attribute {
	if a, ok := termboxColors[name]; ok {
		return a
	}
	return termbox.ColorDefault
}

// Termbox draws on the terminal. Each grid cell is two columns wide so cells
// look square. termbox has no layers, Frame draws bottom up instead.
type Termbox struct {
	Left int
	Top  int
}

// Clear wipes the back buffer.
func (t *Termbox) Clear() error {
	return termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
}

// DrawTile fills the cell at x,y.
func (t *Termbox) DrawTile(x, y int, color string, _ Layer) {
	a := TermboxColor(color)
	termbox.SetCell(t.Left+x*2, t.Top+y, ' ', a, a)
	termbox.SetCell(t.Left+x*2+1, t.Top+y, ' ', a, a)
}

// DrawText prints text starting at cell x,y.
func (t *Termbox) DrawText(x, y int, color string, _ Layer, text string) {
	tbprint(t.Left+x*2, t.Top+y, TermboxColor(color), termbox.ColorDefault, text)
}

// Flush pushes the back buffer to the terminal.
func (t *Termbox) Flush() error {
	return termbox.Flush()
}

func tbprint(x, y int, fg, bg termbox.Attribute, msg string) {
	for _, c := range msg {
		termbox.SetCell(x, y, c, fg, bg)
		x += runewidth.RuneWidth(c)
	}
}
