package render

import "strings"

// ExpandTabs replaces each tab with spaces up to the next tab stop so that
// byte index equals display column. Expansion is idempotent; strings without
// tabs are returned unchanged. A tabstop below 1 falls back to 8.
func ExpandTabs(s string, tabstop int) string {
	if tabstop < 1 {
		tabstop = 8
	}
	if !strings.Contains(s, "\t") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + tabstop)
	col := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\t' {
			n := tabstop - col%tabstop
			b.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		b.WriteByte(s[i])
		col++
	}
	return b.String()
}
