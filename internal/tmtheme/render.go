package tmtheme

import (
	"strings"

	"github.com/opencode-ai/themegen/internal/mapping"
)

const (
	xmlHeader = `<?xml version="1.0" encoding="UTF-8"?>`
	doctype   = `<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">`
)

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// EscapeXML escapes the five XML metacharacters.
func EscapeXML(s string) string {
	return xmlEscaper.Replace(s)
}

type plistWriter struct {
	b strings.Builder
}

func (w *plistWriter) line(depth int, s string) {
	w.b.WriteString(strings.Repeat("\t", depth))
	w.b.WriteString(s)
	w.b.WriteByte('\n')
}

func (w *plistWriter) pair(depth int, key, value string) {
	w.line(depth, "<key>"+EscapeXML(key)+"</key>")
	w.line(depth, "<string>"+EscapeXML(value)+"</string>")
}

func (w *plistWriter) optional(depth int, key, value string) {
	if value != "" {
		w.pair(depth, key, value)
	}
}

// Render serializes doc as a plist document.
func Render(doc Document) []byte {
	var w plistWriter

	w.line(0, xmlHeader)
	w.line(0, doctype)
	w.line(0, `<plist version="1.0">`)
	w.line(0, "<dict>")

	w.pair(1, "author", doc.Meta.Author)
	w.pair(1, "name", doc.Meta.Name)
	w.pair(1, "colorSpaceName", ColorSpace)
	w.pair(1, "semanticClass", doc.Meta.SemanticClass)

	w.line(1, "<key>settings</key>")
	w.line(1, "<array>")

	w.line(2, "<dict>")
	w.line(3, "<key>settings</key>")
	w.line(3, "<dict>")
	for _, setting := range doc.Globals {
		w.optional(4, setting.Key, setting.Value)
	}
	w.line(3, "</dict>")
	w.line(2, "</dict>")

	for _, rule := range doc.Rules {
		if rule.Settings.IsZero() {
			continue
		}
		w.line(2, "<dict>")
		w.pair(3, "name", rule.Name)
		w.pair(3, "scope", rule.Scope)
		w.line(3, "<key>settings</key>")
		w.line(3, "<dict>")
		writeResolved(&w, 4, rule.Settings)
		w.line(3, "</dict>")
		w.line(2, "</dict>")
	}

	w.line(1, "</array>")
	w.line(0, "</dict>")
	w.line(0, "</plist>")

	return []byte(w.b.String())
}

func writeResolved(w *plistWriter, depth int, r mapping.Resolved) {
	w.optional(depth, "foreground", r.Foreground)
	w.optional(depth, "background", r.Background)
	w.optional(depth, "fontStyle", r.FontStyle)
}
