package completion

import (
	"fmt"
	"strings"
)

type FishGenerator struct{}

func (g *FishGenerator) Generate(programName string, data Data) string {
	var script strings.Builder

	for _, flag := range data.Flags {
		cmd := fmt.Sprintf("complete -c %s", programName)
		if flag.Short != "" {
			cmd = fmt.Sprintf("%s -s %s", cmd, flag.Short)
		}
		cmd = fmt.Sprintf("%s -l %s", cmd, flag.Long)
		cmd = fmt.Sprintf("%s -d '%s'", cmd, escapeFish(flag.Description))

		// -x makes fish complete the flag's argument exclusively, without
		// falling back to paths
		if !flag.Standalone {
			cmd = fmt.Sprintf("%s -x", cmd)
			if values, ok := data.Values[flag.Long]; ok {
				words := make([]string, len(values))
				for i, v := range values {
					if v.Description != "" {
						words[i] = fmt.Sprintf("%s\\t'%s'", v.Pattern, escapeFish(v.Description))
					} else {
						words[i] = v.Pattern
					}
				}
				cmd = fmt.Sprintf("%s -a \"%s\"", cmd, strings.Join(words, " "))
			}
		}
		script.WriteString(cmd + "\n")
	}

	return script.String()
}
