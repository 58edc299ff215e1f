package render

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/glo0ml34f/fauxterm/internal/session"
)

const htmlHeader = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { background: #1e1e1e; color: #d4d4d4; font-family: monospace; }
#prompt { color: #c586c0; font-weight: bold; }
.error { color: #f44747; }
pre { margin: 0; }
</style>
</head>
<body>
<div id="terminal-output">
`

const htmlFooter = `</div>
</body>
</html>
`

// WriteHTML writes lines as a standalone HTML page using the markup of the
// browser widget: one div.output-line per line, prompts in span#prompt.
func WriteHTML(w io.Writer, title, prompt string, lines []session.Line) error {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, htmlHeader, html.EscapeString(title))
	for _, l := range lines {
		frag, err := htmlFragment(prompt, l)
		if err != nil {
			return err
		}
		class := "output-line"
		if l.Kind == session.KindError {
			class += " error"
		}
		fmt.Fprintf(&buf, "<div class=%q>%s</div>\n", class, frag)
	}
	buf.WriteString(htmlFooter)
	_, err := w.Write(buf.Bytes())
	return err
}

func htmlFragment(prompt string, l session.Line) (string, error) {
	switch l.Kind {
	case session.KindPrompt:
		rest := strings.TrimPrefix(l.Text, prompt)
		return `<span id="prompt">` + html.EscapeString(prompt) + `</span>` + html.EscapeString(rest), nil
	case session.KindJSON:
		return "<pre>" + html.EscapeString(l.Text) + "</pre>", nil
	case session.KindMarkdown:
		var buf bytes.Buffer
		if err := goldmark.Convert([]byte(l.Text), &buf); err != nil {
			return "", fmt.Errorf("render markdown: %w", err)
		}
		return strings.TrimSpace(buf.String()), nil
	default:
		return html.EscapeString(l.Text), nil
	}
}
