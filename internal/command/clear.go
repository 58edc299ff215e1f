package command

import "github.com/glo0ml34f/fauxterm/internal/session"

// Clear empties the session log.
type Clear struct{}

func (Clear) Info() Info {
	return Info{Name: "clear", Usage: "clear", Desc: "clear the terminal"}
}

func (Clear) Execute(ctx *Context) ([]session.Line, error) {
	ctx.Session.Log.Clear()
	return nil, nil
}
