package cmd

import (
	"encoding/json"
	"fmt"
)

// ToolCmd prints metadata and input schema for a single tool.
type ToolCmd struct {
	Name string `short:"n" long:"name" description:"tool name, e.g. grasshopper_component-add" positional-arg-name:"name" required:"yes"`
	JSON bool   `long:"json" description:"print result as JSON"`
}

func (c *ToolCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}

	description, schema, ok := svc.ToolMetadata(c.Name)
	if !ok {
		return fmt.Errorf("tool %q not found", c.Name)
	}

	info := struct {
		Name        string      `json:"name"`
		Description string      `json:"description"`
		InputSchema interface{} `json:"inputSchema"`
	}{c.Name, description, schema}

	if c.JSON {
		data, _ := json.MarshalIndent(info, "", "  ")
		fmt.Println(string(data))
	} else {
		fmt.Printf("Name : %s\n", info.Name)
		fmt.Printf("Desc : %s\n", info.Description)
		js, _ := json.MarshalIndent(info.InputSchema, "", "  ")
		fmt.Printf("InputSchema:\n%s\n", string(js))
	}
	return nil
}
