package input

import (
	"fmt"
	"strings"

	"github.com/glo0ml34f/fauxterm/internal/command"
)

// helpListener intercepts '?' key presses to display inline help.
type helpListener struct {
	infos func() []command.Info
	out   func(string)
}

func (h *helpListener) OnChange(line []rune, pos int, key rune) ([]rune, int, bool) {
	if key != '?' {
		return nil, 0, false
	}
	if pos > 0 {
		line = append(line[:pos-1], line[pos:]...)
		pos--
	}
	h.out("\n" + strings.Join(InlineHelp(h.infos(), string(line)), "\n") + "\n")
	return line, pos, true
}

// InlineHelp describes the command being typed, or every command when the
// line is blank or the name is unknown.
func InlineHelp(infos []command.Info, typed string) []string {
	name, _, ok := command.Parse(typed)
	if ok {
		for _, info := range infos {
			if info.Name != name {
				continue
			}
			out := []string{info.Usage + " - " + info.Desc}
			for _, p := range info.Params {
				out = append(out, fmt.Sprintf("  %s - %s", p.Name, p.Desc))
			}
			return out
		}
	}
	out := make([]string, 0, len(infos))
	for _, l := range command.HelpLines(infos) {
		out = append(out, l.Text)
	}
	return out
}
