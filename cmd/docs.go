package cmd

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// https://pmarsceill.github.io/just-the-docs/docs/navigation-structure/
const rootPage = `---
layout: default
title: %s
nav_order: %d
has_children: true
permalink: /
---
`

// child command without children
const childPage = `---
layout: default
title: %s
parent: %s
nav_order: %d
---
`

// docsCmd writes Markdown documentation for every command to a directory
var docsCmd = &cobra.Command{
	Use:    "docs [dir]",
	Short:  "Write Markdown documentation for each command",
	Hidden: true,
	Args:   cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dir := "docs"
		if len(args) > 0 {
			dir = args[0]
		}
		if err := makeDocs(dir); err != nil {
			log.Fatal(err)
		}
		log.Info("wrote docs", "dir", dir)
	},
}

func init() {
	RootCmd.AddCommand(docsCmd)
}

// makeDocs parses the custom commands and outputs Markdown documentation files
func makeDocs(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create docs directory %s: %v", dir, err)
	}
	return doc.GenMarkdownTreeCustom(RootCmd, dir, filePrepender, linkHandler)
}

// filePrepender adds YAML headings that are required by the just-the-docs theme
// https://github.com/spf13/cobra/blob/master/doc/md_docs.md
func filePrepender(filename string) string {
	base := docName(filename)
	if base == RootCmd.Name() {
		return fmt.Sprintf(rootPage, base, 0)
	}

	title := strings.TrimPrefix(base, RootCmd.Name()+"_")
	return fmt.Sprintf(childPage, title, RootCmd.Name(), navOrder(title))
}

// linkHandler returns the URL to a documentation page
func linkHandler(filename string) string {
	base := docName(filename)
	if base == RootCmd.Name() {
		return "/"
	}
	return base
}

// navOrder is the position of a command in the navigation: the order it was added to the root
func navOrder(name string) int {
	for i, c := range RootCmd.Commands() {
		if c.Name() == name {
			return i
		}
	}
	return len(RootCmd.Commands())
}

// docName is the file name without its directory or extension, ex: "rosalind_gc"
func docName(filename string) string {
	name := filepath.Base(filename)
	return strings.TrimSuffix(name, path.Ext(name))
}
