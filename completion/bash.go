// completion/bash.go
package completion

import (
	"fmt"
	"strings"
)

type BashGenerator struct{}

func (g *BashGenerator) Generate(programName string, data Data) string {
	var script strings.Builder

	script.WriteString(fmt.Sprintf(`#!/bin/bash

function __%[1]s_completion() {
    local cur prev
    _init_completion || return

    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    # Complete the argument of value-taking flags
    case "${prev}" in`, programName))

	// Value completions in table order
	for _, flag := range data.Flags {
		values, ok := data.Values[flag.Long]
		if !ok {
			continue
		}
		words := make([]string, len(values))
		for i, v := range values {
			words[i] = v.Pattern
		}
		pattern := "--" + flag.Long
		if flag.Short != "" {
			pattern += "|-" + flag.Short
		}
		script.WriteString(fmt.Sprintf(`
        %s)
            COMPREPLY=( $(compgen -W "%s" -- "$cur") )
            return
            ;;`, pattern, strings.Join(words, " ")))
	}

	script.WriteString(`
    esac

    # If we're completing a flag
    if [[ "$cur" == -* ]]; then
        local flags=(`)

	for _, flag := range data.Flags {
		script.WriteString(" --" + flag.Long)
		if flag.Short != "" {
			script.WriteString(" -" + flag.Short)
		}
	}

	script.WriteString(fmt.Sprintf(` )
        COMPREPLY=( $(compgen -W "${flags[*]}" -- "$cur") )
        return
    fi

    _filedir
}

complete -F __%[1]s_completion %[1]s`, programName))

	return script.String()
}
