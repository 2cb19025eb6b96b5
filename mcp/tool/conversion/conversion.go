// Package conversion derives MCP tool schemas from Fluxor action signatures.
package conversion

import (
	"fmt"
	"reflect"

	"github.com/viant/fluxor/model/types"
	schema "github.com/viant/mcp-protocol/schema"
)

// BuildSchema reflects over the signature's input and output types and
// produces a complete tool definition.
func BuildSchema(sig *types.Signature) (schema.Tool, error) {
	var inputSchema schema.ToolInputSchema
	var sample any
	if sig.Input.Kind() == reflect.Pointer {
		sample = reflect.New(sig.Input.Elem()).Interface()
	} else {
		sample = reflect.New(sig.Input).Interface()
	}
	if err := inputSchema.Load(sample); err != nil {
		return schema.Tool{}, fmt.Errorf("failed to build input schema for %s: %w", sig.Name, err)
	}
	var props map[string]map[string]interface{}
	var required []string
	if sig.Output.Kind() == reflect.Pointer {
		props, required = schema.StructToProperties(sig.Output.Elem())
	} else {
		props, required = schema.StructToProperties(sig.Output)
	}
	outputSchema := &schema.ToolOutputSchema{Properties: props, Required: required, Type: "object"}
	desc := sig.Description
	return schema.Tool{Name: sig.Name, Description: &desc, InputSchema: inputSchema, OutputSchema: outputSchema}, nil
}
