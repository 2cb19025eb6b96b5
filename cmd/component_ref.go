package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/rhinomcp/grasshopper-mcp/grasshopper/reference"
)

// ComponentCmd prints static reference knowledge for one component without
// contacting the canvas peer.
type ComponentCmd struct {
	Name string `short:"n" long:"name" description:"component name, e.g. 'Number Slider'" positional-arg-name:"name" required:"yes"`
	JSON bool   `long:"json" description:"print result as JSON"`
}

func (c *ComponentCmd) Execute(_ []string) error {
	library := reference.Default()
	component, ok := library.Lookup(c.Name)
	if !ok {
		return fmt.Errorf("component %q not found in reference library", c.Name)
	}

	if c.JSON {
		data, _ := json.MarshalIndent(component, "", "  ")
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Name     : %s\n", component.Name)
	fmt.Printf("FullName : %s\n", component.FullName)
	fmt.Printf("Desc     : %s\n", component.Description)
	if len(component.Inputs) > 0 {
		fmt.Println("Inputs:")
		for _, p := range component.Inputs {
			fmt.Printf("  %s (%s) %s\n", p.Name, p.Type, p.Description)
		}
	}
	if len(component.Outputs) > 0 {
		fmt.Println("Outputs:")
		for _, p := range component.Outputs {
			fmt.Printf("  %s (%s) %s\n", p.Name, p.Type, p.Description)
		}
	}
	if hint, ok := library.Hints()[component.Name]; ok {
		fmt.Printf("Usage    : %s\n", hint.CommonUsage)
	}
	return nil
}
