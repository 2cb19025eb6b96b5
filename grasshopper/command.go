package grasshopper

// Command is a single canonical operation sent to the Grasshopper host. Type
// selects the peer-side operation; Parameters is an open, operation-specific
// key/value set. A command is immutable once handed to the client.
type Command struct {
	Type       string                 `json:"type"`
	Parameters map[string]interface{} `json:"parameters"`
}

// Response is the peer's reply to one command. Exactly one of Result/Error is
// meaningful, gated by Success.
type Response struct {
	Success bool        `json:"success"`
	Result  interface{} `json:"result,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Connection describes one wire between two components as reported by the
// peer's get_connections operation. Param names take precedence over indexes
// when both could apply; at most one of the two forms is populated per side.
type Connection struct {
	SourceID         string `json:"sourceId"`
	TargetID         string `json:"targetId"`
	SourceParam      string `json:"sourceParam,omitempty"`
	TargetParam      string `json:"targetParam,omitempty"`
	SourceParamIndex *int   `json:"sourceParamIndex,omitempty"`
	TargetParamIndex *int   `json:"targetParamIndex,omitempty"`
}

// Canonical operation names understood by the Grasshopper host. The set is
// peer-defined and non-exhaustive; the constants below cover every operation
// this bridge issues.
const (
	OpAddComponent           = "add_component"
	OpConnectComponents      = "connect_components"
	OpValidateConnection     = "validate_connection"
	OpGetComponentInfo       = "get_component_info"
	OpGetAllComponents       = "get_all_components"
	OpGetConnections         = "get_connections"
	OpGetComponentParameters = "get_component_parameters"
	OpSearchComponents       = "search_components"
	OpSetComponentValue      = "set_component_value"
	OpClearDocument          = "clear_document"
	OpSaveDocument           = "save_document"
	OpLoadDocument           = "load_document"
	OpGetDocumentInfo        = "get_document_info"
	OpExecuteCode            = "execute_code"
	OpCreatePattern          = "create_pattern"
	OpGetAvailablePatterns   = "get_available_patterns"
)
