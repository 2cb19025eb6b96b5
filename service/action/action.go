// Package action provides the shared plumbing for exposing Grasshopper
// bridge operations as Fluxor services. Each sub-package declares typed
// method definitions; Base turns them into types.Service implementations
// whose executors coerce generic tool arguments into the typed inputs.
package action

import (
	"context"
	"reflect"

	"github.com/rhinomcp/grasshopper-mcp/internal/conv"
	"github.com/viant/fluxor/model/types"
)

// Definition describes a single action method: its signature types plus the
// typed handler executed for every call.
type Definition struct {
	Name        string
	Description string
	Input       reflect.Type // pointer to input struct
	Output      reflect.Type // pointer to output struct
	Handler     func(ctx context.Context, input interface{}) (interface{}, error)
}

// Base implements types.Service over a set of definitions.
type Base struct {
	name      string
	sigs      types.Signatures
	executors map[string]types.Executable
}

// NewBase assembles a Fluxor service from method definitions.
func NewBase(name string, defs []Definition) *Base {
	b := &Base{
		name:      name,
		executors: make(map[string]types.Executable, len(defs)),
	}
	for _, def := range defs {
		d := def
		b.sigs = append(b.sigs, types.Signature{
			Name:        d.Name,
			Description: d.Description,
			Input:       d.Input,
			Output:      d.Output,
		})
		b.executors[d.Name] = func(ctx context.Context, input, output interface{}) error {
			// Accept either the typed *struct or a generic map coming from the
			// MCP tool bridge.
			param := input
			if input == nil {
				param = reflect.New(d.Input.Elem()).Interface()
			} else if reflect.TypeOf(input) != d.Input {
				typed := reflect.New(d.Input.Elem()).Interface()
				if err := conv.Convert(input, typed); err != nil {
					return err
				}
				param = typed
			}

			result, err := d.Handler(ctx, param)
			if err != nil {
				return err
			}
			if output == nil {
				return nil
			}
			switch outPtr := output.(type) {
			case *interface{}:
				*outPtr = result
			default:
				return conv.Convert(result, outPtr)
			}
			return nil
		}
	}
	return b
}

// Name implements types.Service.
func (b *Base) Name() string { return b.name }

// Methods implements types.Service.
func (b *Base) Methods() types.Signatures { return b.sigs }

// Method implements types.Service.
func (b *Base) Method(name string) (types.Executable, error) {
	if exec, ok := b.executors[name]; ok {
		return exec, nil
	}
	return nil, types.NewMethodNotFoundError(name)
}
