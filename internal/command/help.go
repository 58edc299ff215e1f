package command

import "github.com/glo0ml34f/fauxterm/internal/session"

// Help lists every registered command.
type Help struct {
	Registry *Registry
}

func (h *Help) Info() Info {
	return Info{Name: "help", Usage: "help", Desc: "show this list of commands"}
}

func (h *Help) Execute(*Context) ([]session.Line, error) {
	return HelpLines(h.Registry.Infos()), nil
}

// HelpLines renders one markdown list item per command.
func HelpLines(infos []Info) []session.Line {
	lines := make([]session.Line, 0, len(infos))
	for _, info := range infos {
		lines = append(lines, session.Line{Kind: session.KindMarkdown, Text: "- " + info.Usage + ": " + info.Desc})
	}
	return lines
}
