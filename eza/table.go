// Copyright 2024-2026, the eza-community contributors. All rights reserved.
// Use of this source code is governed by the MIT license
// which can be found in the LICENSE file.

// Package eza carries the flag descriptor table for eza's command-line
// surface. The table is reference data: built once, sealed, and matched
// against the documented option set by a golden test.
package eza

import (
	"fmt"
	"sync"

	"github.com/eza-community/ezacomp"
)

// Program is the name of the wrapped file-listing tool.
const Program = "eza"

var (
	once  sync.Once
	table *ezacomp.Registry
)

// Table returns the sealed flag descriptor table for eza. The table is built
// on first use and shared afterwards.
func Table() *ezacomp.Registry {
	once.Do(func() {
		table = build()
	})
	return table
}

func build() *ezacomp.Registry {
	registry := ezacomp.NewRegistry()
	add := func(flag *ezacomp.Flag) {
		// the table is compile-time data, so a bad row is a programmer error
		if err := registry.Register(flag); err != nil {
			panic(fmt.Sprintf("eza: bad flag table: %v", err))
		}
	}

	when := []ezacomp.PatternValue{
		{Pattern: "always", Description: "always use terminal colours"},
		{Pattern: "auto", Description: "use terminal colours when printing to a terminal"},
		{Pattern: "never", Description: "never use terminal colours"},
	}
	scale := []ezacomp.PatternValue{
		{Pattern: "all", Description: "highlight both size and age"},
		{Pattern: "age", Description: "highlight file age"},
		{Pattern: "size", Description: "highlight file size"},
	}
	scaleMode := []ezacomp.PatternValue{
		{Pattern: "fixed", Description: "use fixed colours"},
		{Pattern: "gradient", Description: "use a colour gradient"},
	}
	sortField := []ezacomp.PatternValue{
		{Pattern: "name", Description: "sort by filename"},
		{Pattern: "Name", Description: "sort by filename, uppercase before lowercase"},
		{Pattern: "extension", Description: "sort by file extension"},
		{Pattern: "Extension", Description: "sort by file extension, uppercase before lowercase"},
		{Pattern: "size", Description: "sort by file size"},
		{Pattern: "type", Description: "sort by file type"},
		{Pattern: "modified", Description: "sort by modified timestamp"},
		{Pattern: "accessed", Description: "sort by accessed timestamp"},
		{Pattern: "created", Description: "sort by created timestamp"},
		{Pattern: "inode", Description: "sort by inode number"},
		{Pattern: "none", Description: "don't sort at all"},
	}
	timeField := []ezacomp.PatternValue{
		{Pattern: "modified", Description: "when the file was last modified"},
		{Pattern: "changed", Description: "when the file's metadata last changed"},
		{Pattern: "accessed", Description: "when the file was last read"},
		{Pattern: "created", Description: "when the file was created"},
	}
	timeStyle := []ezacomp.PatternValue{
		{Pattern: "default", Description: "the default format"},
		{Pattern: "iso", Description: "ISO date without the year"},
		{Pattern: "long-iso", Description: "ISO date and time, to the minute"},
		{Pattern: "full-iso", Description: "ISO date and time, to the nanosecond"},
		{Pattern: "relative", Description: "time relative to now"},
	}

	add(&ezacomp.Flag{Long: "help", Short: "?", TypeOf: ezacomp.Standalone, Description: "show list of command-line options"})
	add(&ezacomp.Flag{Long: "version", Short: "v", TypeOf: ezacomp.Standalone, Description: "show version of eza"})
	add(&ezacomp.Flag{Long: "oneline", Short: "1", TypeOf: ezacomp.Standalone, Description: "display one entry per line"})
	add(&ezacomp.Flag{Long: "long", Short: "l", TypeOf: ezacomp.Standalone, Description: "display extended file metadata as a table"})
	add(&ezacomp.Flag{Long: "grid", Short: "G", TypeOf: ezacomp.Standalone, Description: "display entries as a grid (default)"})
	add(&ezacomp.Flag{Long: "across", Short: "x", TypeOf: ezacomp.Standalone, Description: "sort the grid across, rather than downwards"})
	add(&ezacomp.Flag{Long: "recurse", Short: "R", TypeOf: ezacomp.Standalone, Description: "recurse into directories"})
	add(&ezacomp.Flag{Long: "tree", Short: "T", TypeOf: ezacomp.Standalone, Description: "recurse into directories as a tree"})
	add(&ezacomp.Flag{Long: "dereference", Short: "X", TypeOf: ezacomp.Standalone, Description: "dereference symbolic links when displaying information"})
	add(&ezacomp.Flag{Long: "classify", Short: "F", TypeOf: ezacomp.Standalone, Description: "display type indicator by file names"})
	add(&ezacomp.Flag{Long: "color", TypeOf: ezacomp.Single, Description: "when to use terminal colours", AcceptedValues: when})
	add(&ezacomp.Flag{Long: "colour", TypeOf: ezacomp.Single, Description: "when to use terminal colours", AcceptedValues: when})
	add(&ezacomp.Flag{Long: "color-scale", TypeOf: ezacomp.Single, Description: "highlight levels of field distinctly", AcceptedValues: scale})
	add(&ezacomp.Flag{Long: "colour-scale", TypeOf: ezacomp.Single, Description: "highlight levels of field distinctly", AcceptedValues: scale})
	add(&ezacomp.Flag{Long: "color-scale-mode", TypeOf: ezacomp.Single, Description: "use gradient or fixed colours in --color-scale", AcceptedValues: scaleMode})
	add(&ezacomp.Flag{Long: "colour-scale-mode", TypeOf: ezacomp.Single, Description: "use gradient or fixed colours in --colour-scale", AcceptedValues: scaleMode})
	add(&ezacomp.Flag{Long: "icons", TypeOf: ezacomp.Single, Description: "when to display icons", AcceptedValues: when})
	add(&ezacomp.Flag{Long: "no-quotes", TypeOf: ezacomp.Standalone, Description: "don't quote file names with spaces"})
	add(&ezacomp.Flag{Long: "hyperlink", TypeOf: ezacomp.Standalone, Description: "display entries as hyperlinks"})
	add(&ezacomp.Flag{Long: "width", Short: "w", TypeOf: ezacomp.Single, Description: "set screen width in columns"})
	add(&ezacomp.Flag{Long: "all", Short: "a", TypeOf: ezacomp.Standalone, Description: "show hidden and 'dot' files"})
	add(&ezacomp.Flag{Long: "almost-all", Short: "A", TypeOf: ezacomp.Standalone, Description: "equivalent to --all; included for compatibility with ls -A"})
	add(&ezacomp.Flag{Long: "list-dirs", Short: "d", TypeOf: ezacomp.Standalone, Description: "list directories as files; don't list their contents"})
	add(&ezacomp.Flag{Long: "level", Short: "L", TypeOf: ezacomp.Single, Description: "limit the depth of recursion"})
	add(&ezacomp.Flag{Long: "reverse", Short: "r", TypeOf: ezacomp.Standalone, Description: "reverse the sort order"})
	add(&ezacomp.Flag{Long: "sort", Short: "s", TypeOf: ezacomp.Single, Description: "which field to sort by", AcceptedValues: sortField})
	add(&ezacomp.Flag{Long: "group-directories-first", TypeOf: ezacomp.Standalone, Description: "list directories before other files"})
	add(&ezacomp.Flag{Long: "only-dirs", Short: "D", TypeOf: ezacomp.Standalone, Description: "list only directories"})
	add(&ezacomp.Flag{Long: "only-files", Short: "f", TypeOf: ezacomp.Standalone, Description: "list only files"})
	add(&ezacomp.Flag{Long: "ignore-glob", Short: "I", TypeOf: ezacomp.Single, Description: "glob patterns (pipe-separated) of files to ignore"})
	add(&ezacomp.Flag{Long: "git-ignore", TypeOf: ezacomp.Standalone, Description: "ignore files mentioned in '.gitignore'"})
	add(&ezacomp.Flag{Long: "binary", Short: "b", TypeOf: ezacomp.Standalone, Description: "list file sizes with binary prefixes"})
	add(&ezacomp.Flag{Long: "bytes", Short: "B", TypeOf: ezacomp.Standalone, Description: "list file sizes in bytes, without any prefixes"})
	add(&ezacomp.Flag{Long: "changed", TypeOf: ezacomp.Standalone, Description: "use the changed timestamp field"})
	add(&ezacomp.Flag{Long: "group", Short: "g", TypeOf: ezacomp.Standalone, Description: "list each file's group"})
	add(&ezacomp.Flag{Long: "smart-group", TypeOf: ezacomp.Standalone, Description: "only show group if it has a different name from owner"})
	add(&ezacomp.Flag{Long: "header", Short: "h", TypeOf: ezacomp.Standalone, Description: "add a header row to each column"})
	add(&ezacomp.Flag{Long: "links", Short: "H", TypeOf: ezacomp.Standalone, Description: "list each file's number of hard links"})
	add(&ezacomp.Flag{Long: "inode", Short: "i", TypeOf: ezacomp.Standalone, Description: "list each file's inode number"})
	add(&ezacomp.Flag{Long: "modified", Short: "m", TypeOf: ezacomp.Standalone, Description: "use the modified timestamp field"})
	add(&ezacomp.Flag{Long: "mounts", Short: "M", TypeOf: ezacomp.Standalone, Description: "show mount details (Linux and Mac only)"})
	add(&ezacomp.Flag{Long: "numeric", Short: "n", TypeOf: ezacomp.Standalone, Description: "list numeric user and group IDs"})
	add(&ezacomp.Flag{Long: "flags", Short: "O", TypeOf: ezacomp.Standalone, Description: "list file flags (Mac, BSD, and Windows only)"})
	add(&ezacomp.Flag{Long: "octal-permissions", Short: "o", TypeOf: ezacomp.Standalone, Description: "list each file's permission in octal format"})
	add(&ezacomp.Flag{Long: "blocksize", Short: "S", TypeOf: ezacomp.Standalone, Description: "show size of allocated file system blocks"})
	add(&ezacomp.Flag{Long: "time", Short: "t", TypeOf: ezacomp.Single, Description: "which timestamp field to list", AcceptedValues: timeField})
	add(&ezacomp.Flag{Long: "accessed", Short: "u", TypeOf: ezacomp.Standalone, Description: "use the accessed timestamp field"})
	add(&ezacomp.Flag{Long: "created", Short: "U", TypeOf: ezacomp.Standalone, Description: "use the created timestamp field"})
	add(&ezacomp.Flag{Long: "time-style", TypeOf: ezacomp.Single, Description: "how to format timestamps", AcceptedValues: timeStyle})
	add(&ezacomp.Flag{Long: "total-size", TypeOf: ezacomp.Standalone, Description: "show the size of a directory as the size of all the files and directories inside"})
	add(&ezacomp.Flag{Long: "no-permissions", TypeOf: ezacomp.Standalone, Description: "suppress the permissions field"})
	add(&ezacomp.Flag{Long: "no-filesize", TypeOf: ezacomp.Standalone, Description: "suppress the filesize field"})
	add(&ezacomp.Flag{Long: "no-user", TypeOf: ezacomp.Standalone, Description: "suppress the user field"})
	add(&ezacomp.Flag{Long: "no-time", TypeOf: ezacomp.Standalone, Description: "suppress the time field"})
	add(&ezacomp.Flag{Long: "git", TypeOf: ezacomp.Standalone, Description: "list each file's Git status, if tracked or ignored"})
	add(&ezacomp.Flag{Long: "no-git", TypeOf: ezacomp.Standalone, Description: "suppress Git status (always overrides --git, --git-repos, --git-repos-no-status)"})
	add(&ezacomp.Flag{Long: "git-repos", TypeOf: ezacomp.Standalone, Description: "list root of git-tree status"})
	add(&ezacomp.Flag{Long: "git-repos-no-status", TypeOf: ezacomp.Standalone, Description: "list each git-repos branch name (no status)"})
	add(&ezacomp.Flag{Long: "extended", Short: "@", TypeOf: ezacomp.Standalone, Description: "list each file's extended attributes and sizes"})
	add(&ezacomp.Flag{Long: "context", Short: "Z", TypeOf: ezacomp.Standalone, Description: "list each file's security context"})

	registry.Seal()

	return registry
}
