package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hogwash-io/hogwash/pkg/cmd"
)

const targetDir = "docs"

func main() {
	resultingFile, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Created docs in ", resultingFile)
}

func run() (string, error) {
	os.Setenv("NO_COLOR", "true")
	defer os.Unsetenv("NO_COLOR")

	if err := os.MkdirAll(targetDir, os.ModePerm); err != nil {
		return "", err
	}

	rootCmd, err := cmd.BuildRootCommand()
	if err != nil {
		return "", err
	}

	return writeMarkdownReference(rootCmd, targetDir)
}

type section struct {
	path    string
	content string
}

// writeMarkdownReference renders the full command tree into a single markdown
// file named after the root command.
func writeMarkdownReference(rootCmd *cobra.Command, dir string) (string, error) {
	filename := filepath.Join(dir, strings.ReplaceAll(rootCmd.CommandPath(), " ", "_")+".md")

	f, err := os.Create(filename)
	if err != nil {
		return "", err
	}
	defer f.Close()

	sections := collectSections(rootCmd, nil)
	slices.SortFunc(sections, func(a, b section) int {
		return strings.Compare(a.path, b.path)
	})

	for _, s := range sections {
		if _, err := f.WriteString(s.content); err != nil {
			return "", err
		}
	}

	return filename, nil
}

func collectSections(c *cobra.Command, sections []section) []section {
	buf := new(bytes.Buffer)
	path := c.CommandPath()

	buf.WriteString("## Reference: `" + path + "`\n\n")
	switch {
	case len(c.Long) > 0:
		buf.WriteString(c.Long + "\n\n")
	case len(c.Short) > 0:
		buf.WriteString(c.Short + "\n\n")
	}

	if c.Runnable() {
		fmt.Fprintf(buf, "```\n%s\n```\n\n", c.UseLine())
	}

	if len(c.Example) > 0 {
		buf.WriteString("### Examples\n\n")
		fmt.Fprintf(buf, "```\n%s\n```\n\n", c.Example)
	}

	writeOptions(buf, c)

	children := subcommands(c)
	if len(children) > 0 {
		buf.WriteString("### Children commands\n\n")
		for _, child := range children {
			childPath := path + " " + child.Name()
			anchor := "reference-" + strings.ReplaceAll(strings.ReplaceAll(childPath, "_", "-"), " ", "-")
			fmt.Fprintf(buf, "- [%s](#%s)\t - %s\n", childPath, anchor, child.Short)
		}
	}
	buf.WriteString("\n\n")

	sections = append(sections, section{path: path, content: buf.String()})
	for _, child := range children {
		sections = collectSections(child, sections)
	}
	return sections
}

func subcommands(c *cobra.Command) []*cobra.Command {
	children := make([]*cobra.Command, 0, len(c.Commands()))
	for _, child := range c.Commands() {
		if !child.IsAvailableCommand() || child.IsAdditionalHelpTopicCommand() {
			continue
		}
		children = append(children, child)
	}
	slices.SortFunc(children, func(a, b *cobra.Command) int {
		return strings.Compare(a.Name(), b.Name())
	})
	return children
}

func writeOptions(buf *bytes.Buffer, c *cobra.Command) {
	flags := c.NonInheritedFlags()
	flags.SetOutput(buf)
	if flags.HasAvailableFlags() {
		buf.WriteString("### Options\n\n```\n")
		flags.PrintDefaults()
		buf.WriteString("```\n\n")
	}

	parentFlags := c.InheritedFlags()
	parentFlags.SetOutput(buf)
	if parentFlags.HasAvailableFlags() {
		buf.WriteString("### Options Inherited From Parent Flags\n\n```\n")
		parentFlags.PrintDefaults()
		buf.WriteString("```\n\n")
	}
}
