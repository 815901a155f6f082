package cmd

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// https://pmarsceill.github.io/just-the-docs/docs/navigation-structure/
const rootDoc = `---
layout: default
title: %s
nav_order: %d
has_children: true
permalink: /
---
`

// child command without children
const childDoc = `---
layout: default
title: %s
parent: %s
nav_order: %d
---
`

// child with children
const childParentDoc = `---
layout: default
title: %s
parent: %s
nav_order: %d
has_children: true
---
`

// grandchildren
const grandchildDoc = `---
layout: default
title: %s
parent: %s
grand_parent: %s
nav_order: %d
---
`

// docType codes whether the command is a grandchild, child, etc
type docType int

const (
	root docType = iota
	child
	childParent
	grandchild
)

// meta is for describing the position/info for a command doc page
type meta struct {
	docType     docType
	title       string
	navOrder    int
	parent      string
	grandParent string
}

// map from the base Markdown file name to its build meta
var metaMap = map[string]meta{
	"primername":               {root, "primername", 0, "", ""},
	"primername_resolve":       {child, "resolve", 0, "primername", ""},
	"primername_name":          {child, "name", 1, "primername", ""},
	"primername_find":          {childParent, "find", 2, "primername", ""},
	"primername_find_gene":     {grandchild, "gene", 0, "find", "primername"},
	"primername_find_primer":   {grandchild, "primer", 1, "find", "primername"},
	"primername_set":           {childParent, "set", 3, "primername", ""},
	"primername_set_primer":    {grandchild, "primer", 0, "set", "primername"},
	"primername_delete":        {childParent, "delete", 4, "primername", ""},
	"primername_delete_primer": {grandchild, "primer", 0, "delete", "primername"},
	"primername_check":         {child, "check", 5, "primername", ""},
}

// newDocsCmd is for writing Markdown documentation for every command
func newDocsCmd() *cobra.Command {
	return &cobra.Command{
		Use:    "docs [dir]",
		Short:  "Write Markdown documentation for the commands",
		Args:   cobra.MaximumNArgs(1),
		Hidden: true,
		// docs doesn't need the settings or a reference file
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "docs"
			if len(args) > 0 {
				dir = args[0]
			}
			return makeDocs(cmd.Root(), dir)
		},
	}
}

// makeDocs parses the custom commands and outputs Markdown documentation files
func makeDocs(rootCmd *cobra.Command, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	rootCmd.DisableAutoGenTag = true
	if err := doc.GenMarkdownTreeCustom(rootCmd, dir, filePrepender, linkHandler); err != nil {
		return fmt.Errorf("failed to write docs: %w", err)
	}
	return nil
}

// filePrepender adds YAML headings that are required by the just-the-docs theme
// https://github.com/spf13/cobra/blob/master/doc/md_docs.md
func filePrepender(filename string) string {
	name := filepath.Base(filename)
	base := strings.TrimSuffix(name, path.Ext(name))
	m, ok := metaMap[base]
	if !ok {
		return ""
	}

	switch m.docType {
	case root:
		return fmt.Sprintf(rootDoc, m.title, m.navOrder)
	case child:
		return fmt.Sprintf(childDoc, m.title, m.parent, m.navOrder)
	case childParent:
		return fmt.Sprintf(childParentDoc, m.title, m.parent, m.navOrder)
	case grandchild:
		return fmt.Sprintf(grandchildDoc, m.title, m.parent, m.grandParent, m.navOrder)
	}

	return ""
}

// linkHandler returns the URL to a documentation page
func linkHandler(filename string) string {
	name := filepath.Base(filename)
	base := strings.TrimSuffix(name, path.Ext(name))

	if base == "primername" {
		return "/"
	}
	return base
}
