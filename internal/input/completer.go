package input

import (
	"strings"

	"github.com/glo0ml34f/fauxterm/internal/command"
)

// autoCompleter completes command names in the first word of the line.
type autoCompleter struct {
	infos func() []command.Info
}

func (c *autoCompleter) Do(line []rune, pos int) ([][]rune, int) {
	input := string(line[:pos])
	fields := strings.Fields(input)
	if len(fields) > 1 || (len(fields) == 1 && strings.HasSuffix(input, " ")) {
		return nil, 0
	}
	prefix := ""
	if len(fields) == 1 {
		prefix = strings.ToLower(fields[0])
	}
	var out [][]rune
	for _, info := range c.infos() {
		if strings.HasPrefix(info.Name, prefix) {
			out = append(out, []rune(info.Name[len(prefix):]+" "))
		}
	}
	return out, len([]rune(prefix))
}
