package main

import (
	"fmt"
	"os"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/eza-community/ezacomp"
	"github.com/eza-community/ezacomp/completion"
	"github.com/eza-community/ezacomp/eza"
	"github.com/eza-community/ezacomp/snapshot"
	"github.com/eza-community/ezacomp/util"
)

const usage = `ezacomp manages shell completion definitions for eza.

Usage:
  ezacomp generate --shell SHELL   print the completion script for one shell
  ezacomp install [--shell SHELL]  write completion scripts to the user's completion directories
  ezacomp list [--width N]         print the flag descriptor table
  ezacomp snapshot [--out FILE]    write the canonical snapshot of the table
  ezacomp suggest LINE             print completions for a partial eza command line

Shells: bash, zsh, fish, powershell
`

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		return 2
	}

	switch args[0] {
	case "generate":
		return runGenerate(args[1:])
	case "install":
		return runInstall(args[1:])
	case "list":
		return runList(args[1:])
	case "snapshot":
		return runSnapshot(args[1:])
	case "suggest":
		return runSuggest(args[1:])
	case "help", "--help", "-h":
		fmt.Print(usage)
		return 0
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s", args[0], usage)
		return 2
	}
}

func runGenerate(args []string) int {
	flags := flag.NewFlagSet("generate", flag.ContinueOnError)
	shell := flags.StringP("shell", "s", "bash", "shell to generate the completion script for")
	if err := flags.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}
	if !knownShell(*shell) {
		fmt.Fprintf(os.Stderr, "Error: unsupported shell %q\n", *shell)
		return 2
	}

	generator := completion.GetGenerator(*shell)
	fmt.Println(generator.Generate(eza.Program, eza.Table().CompletionData()))

	return 0
}

func runInstall(args []string) int {
	flags := flag.NewFlagSet("install", flag.ContinueOnError)
	shells := flags.StringSliceP("shell", "s", completion.Shells(), "shells to install completions for")
	if err := flags.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	written, err := completion.InstallAll(eza.Program, eza.Table().CompletionData(), *shells)
	for _, path := range written {
		fmt.Println(path)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

func runList(args []string) int {
	flags := flag.NewFlagSet("list", flag.ContinueOnError)
	widthFlag := flags.IntP("width", "w", 0, "render width in columns (0 = detect)")
	if err := flags.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	width, err := util.Width(*widthFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	table := eza.Table()
	labels := make([]string, 0, table.Len())
	labelColumn := 0
	for _, descriptor := range table.Flags() {
		label := flagLabel(descriptor)
		labels = append(labels, label)
		if len(label) > labelColumn {
			labelColumn = len(label)
		}
	}

	for i, descriptor := range table.Flags() {
		description := descriptor.Description
		if room := width - labelColumn - 4; room > 3 && len(description) > room {
			description = description[:room-3] + "..."
		}
		fmt.Printf("  %-*s  %s\n", labelColumn, labels[i], description)
	}

	return 0
}

func flagLabel(descriptor *ezacomp.Flag) string {
	label := "--" + descriptor.Long
	if descriptor.Short != "" {
		label = "-" + descriptor.Short + ", " + label
	}
	if descriptor.TypeOf == ezacomp.Single {
		label += "=..."
	}

	return label
}

func runSnapshot(args []string) int {
	flags := flag.NewFlagSet("snapshot", flag.ContinueOnError)
	out := flags.StringP("out", "o", "", "file to write the snapshot to (default stdout)")
	if err := flags.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	target := os.Stdout
	if *out != "" {
		file, err := os.Create(*out)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		defer file.Close()
		target = file
	}

	if err := snapshot.Encode(target, snapshot.Rows(eza.Table()), time.Now()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

func runSuggest(args []string) int {
	flags := flag.NewFlagSet("suggest", flag.ContinueOnError)
	maxResults := flags.IntP("max", "m", 10, "maximum number of suggestions")
	if err := flags.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}
	if flags.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: suggest takes exactly one LINE argument")
		return 2
	}

	suggestions, err := eza.Table().Suggest(flags.Arg(0), *maxResults)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	for _, suggestion := range suggestions {
		fmt.Printf("%s\t%s\n", suggestion.Text, suggestion.Description)
	}

	return 0
}

func knownShell(shell string) bool {
	for _, known := range completion.Shells() {
		if shell == known {
			return true
		}
	}
	return false
}
