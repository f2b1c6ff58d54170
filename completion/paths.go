package completion

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

func ensurePermission(path string, perm os.FileMode) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}

	if runtime.GOOS == "windows" {
		return nil
	}

	actualPerm := info.Mode().Perm()
	if actualPerm != perm {
		if err := os.Chmod(path, perm); err != nil {
			return fmt.Errorf("failed to set permissions on %s from %o to %o: %w",
				path, actualPerm, perm, err)
		}
	}

	return nil
}

func isPowerShellCore() bool {
	_, err := exec.LookPath("pwsh")
	return err == nil
}

// pathSpec lists path elements joined under the user's home directory.
type pathSpec struct {
	primary   []string
	fallback  []string
	extension string
	comment   string
}

var unixPaths = map[string]pathSpec{
	"bash": {
		primary:  []string{".local", "share", "bash-completion", "completions"},
		fallback: []string{".bash_completion.d"},
		comment:  "XDG-compatible user-local bash completions directory",
	},
	"zsh": {
		primary:  []string{".zsh", "completion"},
		fallback: []string{".zfunc"},
		comment:  "User-local zsh completions directory",
	},
	"fish": {
		primary:   []string{".config", "fish", "completions"},
		fallback:  []string{".local", "share", "fish", "completions"},
		extension: ".fish",
		comment:   "Fish user completions directory",
	},
}

func powerShellSpec() pathSpec {
	switch runtime.GOOS {
	case "windows":
		if isPowerShellCore() {
			return pathSpec{
				primary:   []string{"Documents", "PowerShell", "Completions"},
				fallback:  []string{".config", "powershell", "Completions"},
				extension: ".ps1",
				comment:   "PowerShell Core user completions directory",
			}
		}
		return pathSpec{
			primary:   []string{"Documents", "WindowsPowerShell", "Completions"},
			fallback:  []string{".config", "WindowsPowerShell", "Completions"},
			extension: ".ps1",
			comment:   "Windows PowerShell user completions directory",
		}
	case "darwin":
		return pathSpec{
			primary:   []string{"Library", "PowerShell", "Completions"},
			fallback:  []string{".config", "powershell", "Completions"},
			extension: ".ps1",
			comment:   "PowerShell Core user completions directory",
		}
	default:
		return pathSpec{
			primary:   []string{".config", "powershell", "Completions"},
			fallback:  []string{".local", "share", "powershell", "Completions"},
			extension: ".ps1",
			comment:   "PowerShell Core user completions directory",
		}
	}
}

func pathsForShell(shell string) (Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Paths{}, fmt.Errorf("couldn't get user home directory: %w", err)
	}

	var spec pathSpec
	switch shell {
	case "bash", "zsh", "fish":
		spec = unixPaths[shell]
	case "powershell":
		spec = powerShellSpec()
	default:
		return Paths{}, fmt.Errorf("unsupported shell: %s", shell)
	}

	return Paths{
		Primary:   filepath.Join(append([]string{home}, spec.primary...)...),
		Fallback:  filepath.Join(append([]string{home}, spec.fallback...)...),
		Extension: spec.extension,
		Comment:   spec.comment,
	}, nil
}
