package cmd

import (
	"fmt"
	"sort"
)

// ListToolsCmd prints every registered tool with its description.
type ListToolsCmd struct {
	Pattern string `short:"p" long:"pattern" description:"Filter tools by pattern, e.g. grasshopper/component/" default:"*"`
}

func (c *ListToolsCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}

	tools := svc.MatchTools(c.Pattern)
	// Sorting for deterministic output (helpful for tests and scripting).
	sort.Slice(tools, func(i, j int) bool { return tools[i].Metadata.Name < tools[j].Metadata.Name })
	for _, t := range tools {
		desc := ""
		if t.Metadata.Description != nil {
			desc = *t.Metadata.Description
		}
		fmt.Printf("%s\t%s\n", t.Metadata.Name, desc)
	}
	return nil
}
