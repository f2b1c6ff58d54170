package completion

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ef-ds/deque"
)

// Manager generates and installs the completion script for one shell.
type Manager struct {
	Shell       string
	ProgramName string
	Paths       Paths
	generator   Generator
	script      string
}

// NewManager creates a completion manager which can be used to generate and save
// the completion script for a given shell
func NewManager(shell, programName string) (*Manager, error) {
	paths, err := pathsForShell(shell)
	if err != nil {
		return nil, fmt.Errorf("failed to get completion paths: %w", err)
	}

	return &Manager{
		Shell:       shell,
		ProgramName: filepath.Base(programName),
		Paths:       paths,
		generator:   GetGenerator(shell),
	}, nil
}

// Accept generates and stores the completion script from the provided data
func (m *Manager) Accept(data Data) {
	m.script = m.generator.Generate(m.ProgramName, data)
}

// Script returns the previously generated completion script.
func (m *Manager) Script() string {
	return m.script
}

// Save writes the previously generated completion script to the shell's
// completion directory
func (m *Manager) Save() error {
	if m.script == "" {
		return fmt.Errorf("no completion script generated")
	}

	if err := m.ensurePath(); err != nil {
		return err
	}

	target := m.TargetPath()
	if err := os.WriteFile(target, []byte(m.script), 0644); err != nil {
		return fmt.Errorf("failed to write completion file: %w", err)
	}

	return ensurePermission(target, 0644)
}

func (m *Manager) ensurePath() error {
	perm := os.FileMode(0755)
	err := os.MkdirAll(m.Paths.Primary, perm)
	if err != nil {
		return fmt.Errorf("failed to create primary completion directory: %w", err)
	}

	err = ensurePermission(m.Paths.Primary, perm)
	if err == nil {
		return nil
	}

	if m.Paths.Fallback != "" {
		err = os.MkdirAll(m.Paths.Fallback, perm)
		if err != nil {
			return fmt.Errorf("failed to create fallback completion directory: %w", err)
		}
		return ensurePermission(m.Paths.Fallback, perm)
	}

	return fmt.Errorf("failed to create completion directories: %w", err)
}

func (m *Manager) fileConventions() FileInfo {
	switch m.Shell {
	case "zsh":
		return FileInfo{
			Prefix:  "_",
			Comment: "Zsh completion files should start with _ (e.g., _eza)",
		}
	case "fish":
		return FileInfo{
			Extension: ".fish",
			Comment:   "Fish completion files must end in .fish",
		}
	case "powershell":
		return FileInfo{
			Extension: ".ps1",
			Comment:   "PowerShell completion files must end in .ps1",
		}
	default:
		return FileInfo{
			Comment: "Bash completion files are typically just the command name",
		}
	}
}

// TargetPath returns the file the completion script is saved to.
func (m *Manager) TargetPath() string {
	conventions := m.fileConventions()
	filename := conventions.Prefix + m.ProgramName + conventions.Extension
	return filepath.Join(m.Paths.Primary, filename)
}

// InstallAll generates and writes completion scripts for each requested
// shell. Jobs are drained from a FIFO so one failing shell doesn't block the
// rest; errors are collected per shell. It returns the paths written.
func InstallAll(programName string, data Data, shells []string) ([]string, error) {
	pending := deque.New()
	for _, shell := range shells {
		pending.PushBack(shell)
	}

	var written []string
	var errs []error
	for {
		item, ok := pending.PopFront()
		if !ok {
			break
		}
		shell := item.(string)

		manager, err := NewManager(shell, programName)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", shell, err))
			continue
		}
		manager.Accept(data)
		if err := manager.Save(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", shell, err))
			continue
		}
		written = append(written, manager.TargetPath())
	}

	return written, errors.Join(errs...)
}
