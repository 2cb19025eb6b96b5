package cmd

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
)

// ActionCmd shows detailed information about one action method.
type ActionCmd struct {
	Name string `short:"n" long:"name" description:"identifier in form service/method, e.g. grasshopper/component/add" positional-arg-name:"name" required:"yes"`
	JSON bool   `long:"json" description:"print result as JSON"`
}

func (c *ActionCmd) Execute(_ []string) error {
	idx := strings.LastIndex(c.Name, "/")
	if idx <= 0 || idx == len(c.Name)-1 {
		return fmt.Errorf("name must be service/method")
	}
	svcName, method := c.Name[:idx], c.Name[idx+1:]

	svc, err := serviceSingleton()
	if err != nil {
		return err
	}

	actions := svc.WorkflowService().Actions()
	s := actions.Lookup(svcName)
	if s == nil {
		return fmt.Errorf("service %q not found", svcName)
	}
	sig := s.Methods().Lookup(method)
	if sig == nil {
		return fmt.Errorf("method %q not found in service %q", method, svcName)
	}

	info := struct {
		Service     string `json:"service"`
		Method      string `json:"method"`
		Description string `json:"description"`
		InputType   string `json:"inputType"`
		OutputType  string `json:"outputType"`
	}{
		Service:     svcName,
		Method:      method,
		Description: sig.Description,
		InputType:   typeString(sig.Input),
		OutputType:  typeString(sig.Output),
	}

	if c.JSON {
		data, _ := json.MarshalIndent(info, "", "  ")
		fmt.Println(string(data))
	} else {
		fmt.Printf("Service : %s\n", info.Service)
		fmt.Printf("Method  : %s\n", info.Method)
		fmt.Printf("Desc    : %s\n", info.Description)
		fmt.Printf("Input   : %s\n", info.InputType)
		fmt.Printf("Output  : %s\n", info.OutputType)
	}
	return nil
}

func typeString(t reflect.Type) string {
	if t == nil {
		return "<none>"
	}
	if t.Kind() == reflect.Pointer {
		return "*" + t.Elem().String()
	}
	return t.String()
}
