// completion/powershell.go
package completion

import (
	"fmt"
	"strings"
)

type PowerShellGenerator struct{}

func (g *PowerShellGenerator) Generate(programName string, data Data) string {
	var script strings.Builder

	script.WriteString(fmt.Sprintf(`
Register-ArgumentCompleter -Native -CommandName %[1]s -ScriptBlock {
    param($wordToComplete, $commandAst, $cursorPosition)
    $commandElements = $commandAst.CommandElements
    $prev = ''
    if ($commandElements.Count -gt 1) {
        $prev = $commandElements[$commandElements.Count - 2].ToString()
    }

    # Complete the argument of value-taking flags
    switch ($prev) {`, programName))

	for _, flag := range data.Flags {
		values, ok := data.Values[flag.Long]
		if !ok {
			continue
		}
		labels := []string{"'--" + flag.Long + "'"}
		if flag.Short != "" {
			labels = append(labels, "'-"+flag.Short+"'")
		}
		script.WriteString(fmt.Sprintf(`
        {$_ -in %s} {
            @(`, strings.Join(labels, ", ")))
		for _, v := range values {
			script.WriteString(fmt.Sprintf(`
                [CompletionResult]::new('%s', '%s', [CompletionResultType]::ParameterValue, '%s')`,
				v.Pattern, v.Pattern, escapePowerShell(tooltip(v.Description, v.Pattern))))
		}
		script.WriteString(`
            ) | Where-Object { $_.CompletionText -like "$wordToComplete*" }
            return
        }`)
	}

	script.WriteString(`
    }

    # Handle flags
    if ($wordToComplete.StartsWith('-')) {
        @(`)

	for _, flag := range data.Flags {
		script.WriteString(fmt.Sprintf(`
            [CompletionResult]::new('--%s', '%s', [CompletionResultType]::ParameterName, '%s')`,
			flag.Long, flag.Long, escapePowerShell(flag.Description)))
		if flag.Short != "" {
			script.WriteString(fmt.Sprintf(`
            [CompletionResult]::new('-%s', '%s', [CompletionResultType]::ParameterName, '%s')`,
				flag.Short, flag.Short, escapePowerShell(flag.Description)))
		}
	}

	script.WriteString(`
        ) | Where-Object { $_.CompletionText -like "$wordToComplete*" }
        return
    }
}`)

	return script.String()
}

// tooltip falls back to the completion text itself: PowerShell rejects
// CompletionResults with an empty tooltip.
func tooltip(description, text string) string {
	if description == "" {
		return text
	}
	return description
}
