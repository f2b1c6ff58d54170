// completion/zsh.go
package completion

import (
	"fmt"
	"strings"
)

type ZshGenerator struct{}

func (g *ZshGenerator) Generate(programName string, data Data) string {
	var script strings.Builder

	script.WriteString(fmt.Sprintf(`#compdef %[1]s

__%[1]s_completion() {
    _arguments -s \`, programName))

	for _, flag := range data.Flags {
		script.WriteString("\n        ")
		script.WriteString(argumentSpec(flag, data.Values[flag.Long]))
		script.WriteString(" \\")
	}

	script.WriteString(fmt.Sprintf(`
        '*:file:_files'
}

__%[1]s_completion "$@"`, programName))

	return script.String()
}

// argumentSpec renders one _arguments spec line. Flags with a short alias use
// the exclusion-group form so zsh offers each spelling only once.
func argumentSpec(flag FlagEntry, values []ValueEntry) string {
	var spec strings.Builder

	if flag.Short != "" {
		spec.WriteString(fmt.Sprintf("'(-%[1]s --%[2]s)'{-%[1]s,--%[2]s}'", flag.Short, flag.Long))
	} else {
		spec.WriteString(fmt.Sprintf("'--%s", flag.Long))
	}
	spec.WriteString("[" + escapeZsh(flag.Description) + "]")

	if !flag.Standalone {
		spec.WriteString(":value:")
		if len(values) > 0 {
			words := make([]string, len(values))
			for i, v := range values {
				if v.Description != "" {
					desc := strings.ReplaceAll(escapeZsh(v.Description), " ", "\\ ")
					words[i] = v.Pattern + "\\:" + desc
				} else {
					words[i] = v.Pattern
				}
			}
			spec.WriteString("((" + strings.Join(words, " ") + "))")
		} else {
			spec.WriteString("( )")
		}
	}
	spec.WriteString("'")

	return spec.String()
}
