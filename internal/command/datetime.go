package command

import "github.com/glo0ml34f/fauxterm/internal/session"

// DefaultDateLayout mirrors a day-first locale date and time.
const DefaultDateLayout = "02/01/2006, 15:04:05"

// DateTime prints the current local date and time.
type DateTime struct {
	Layout string
}

func (d *DateTime) Info() Info {
	return Info{Name: "datetime", Usage: "datetime", Desc: "print the current date and time"}
}

func (d *DateTime) Execute(ctx *Context) ([]session.Line, error) {
	layout := d.Layout
	if layout == "" {
		layout = DefaultDateLayout
	}
	return []session.Line{session.Text(ctx.Session.Now().Format(layout))}, nil
}
