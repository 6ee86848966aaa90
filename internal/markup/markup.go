// Package markup turns bullet-formatted copy into HTML.
package markup

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var bulletMarks = []string{"•", "·", "*", "-"}

// Renderer converts description text to sanitized HTML. Raw HTML in the source is
// dropped. Safe for concurrent use.
type Renderer struct {
	md goldmark.Markdown
}

func New() *Renderer {
	return &Renderer{
		md: goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
}

// Render converts text, treating lines that start with a bullet mark as list items.
func (r *Renderer) Render(text string) (template.HTML, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(ToMarkdown(text)), &buf); err != nil {
		return "", fmt.Errorf("converting description: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// ToMarkdown rewrites bullet-mark lines as markdown list items. A blank line separates
// a leading paragraph from the list.
func ToMarkdown(text string) string {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	var b strings.Builder
	inList := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		item, ok := cutBullet(trimmed)
		switch {
		case ok:
			if !inList && b.Len() > 0 {
				b.WriteString("\n")
			}
			b.WriteString("- ")
			b.WriteString(item)
			b.WriteString("\n")
			inList = true
		case trimmed == "":
			b.WriteString("\n")
			inList = false
		default:
			if inList {
				b.WriteString("\n")
				inList = false
			}
			b.WriteString(trimmed)
			b.WriteString("\n")
		}
	}
	return b.String()
}

func cutBullet(line string) (string, bool) {
	for _, mark := range bulletMarks {
		if rest, ok := strings.CutPrefix(line, mark); ok {
			if mark == "*" || mark == "-" {
				if !strings.HasPrefix(rest, " ") {
					return "", false
				}
			}
			return strings.TrimSpace(rest), true
		}
	}
	return "", false
}
