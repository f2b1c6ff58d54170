package completion

// Generator renders a completion script registering the descriptor table with
// the host shell's completion engine under the given program name.
type Generator interface {
	Generate(programName string, data Data) string
}

// GetGenerator returns the Generator for the given shell, defaulting to bash.
func GetGenerator(shell string) Generator {
	switch shell {
	case "zsh":
		return &ZshGenerator{}
	case "fish":
		return &FishGenerator{}
	case "powershell":
		return &PowerShellGenerator{}
	default:
		return &BashGenerator{}
	}
}

// Shells lists the supported shells in a deterministic order.
func Shells() []string {
	return []string{"bash", "zsh", "fish", "powershell"}
}
