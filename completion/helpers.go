package completion

import (
	"strings"
)

func escapeZsh(s string) string {
	s = strings.ReplaceAll(s, `[`, `\[`)
	s = strings.ReplaceAll(s, `]`, `\]`)
	s = strings.ReplaceAll(s, `'`, `'\''`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return s
}

func escapeFish(s string) string {
	return strings.ReplaceAll(s, "'", "\\'")
}

func escapePowerShell(s string) string {
	s = strings.ReplaceAll(s, "`", "``")
	s = strings.ReplaceAll(s, `"`, "`\"")
	s = strings.ReplaceAll(s, `$`, "`$")
	s = strings.ReplaceAll(s, `'`, `''`)
	return s
}
