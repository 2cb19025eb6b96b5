package cmd

// Options is the root for the CLI. Struct tags are interpreted by
// github.com/jessevdk/go-flags.
type Options struct {
	Config string `short:"f" long:"config" description:"bridge configuration YAML path or URL"`

	Serve       *ServeCmd       `command:"serve"        description:"Start MCP server exposing the Grasshopper tools"`
	Call        *CallCmd        `command:"call"         description:"Invoke a registered tool once and print the result"`
	ListTools   *ListToolsCmd   `command:"list-tools"   description:"List all registered tools"`
	Tool        *ToolCmd        `command:"tool"         description:"Show detailed info about one MCP tool"`
	ListActions *ListActionsCmd `command:"list-actions" description:"List action services and their methods"`
	Action      *ActionCmd      `command:"action"       description:"Show detailed info about one action method"`
	Component   *ComponentCmd   `command:"component"    description:"Show static reference knowledge for a component"`
}

// Init instantiates the sub-command referenced by the first positional
// argument so that go-flags can populate its fields.
func (o *Options) Init(firstArg string) {
	switch firstArg {
	case "serve":
		o.Serve = &ServeCmd{}
	case "call":
		o.Call = &CallCmd{}
	case "list-tools":
		o.ListTools = &ListToolsCmd{}
	case "tool":
		o.Tool = &ToolCmd{}
	case "list-actions":
		o.ListActions = &ListActionsCmd{}
	case "action":
		o.Action = &ActionCmd{}
	case "component":
		o.Component = &ComponentCmd{}
	}
}
