package ast

import (
	"fmt"
	"io"
	"strings"
)

// Render returns a human-readable dump of the tree under root: one
// node per line, indented by depth, showing the kind name and, for
// Char nodes, the two range boundaries. The format is diagnostic
// output only and carries no compatibility guarantee.
func Render(root *Node) string {
	var b strings.Builder
	Walk(root, func(n *Node, depth int) bool {
		b.WriteString(strings.Repeat(" ", depth))
		b.WriteString(n.Kind.String())
		if n.Kind == Char {
			b.WriteByte(' ')
			b.WriteString(formatBound(n.Lo))
			b.WriteByte(' ')
			b.WriteString(formatBound(n.Hi))
		}
		b.WriteByte('\n')
		return true
	})
	return b.String()
}

// Fprint writes the rendering of root to w.
func Fprint(w io.Writer, root *Node) error {
	_, err := io.WriteString(w, Render(root))
	return err
}

// formatBound formats one range boundary: printable ASCII as the
// character itself, anything else (control characters, MaxChar) in
// hex.
func formatBound(v int) string {
	if v >= 0x21 && v <= 0x7e {
		return string(rune(v))
	}
	return fmt.Sprintf("0x%02X", v)
}
