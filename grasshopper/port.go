package grasshopper

// binaryInputTypes lists the component types with two unlabeled numeric
// inputs where the bridge picks the port itself instead of deferring to the
// peer's default.
var binaryInputTypes = map[string]bool{
	"Addition":       true,
	"Subtraction":    true,
	"Multiplication": true,
	"Division":       true,
	"Math":           true,
}

// PortAssignment identifies the input port chosen for a pending connection,
// either by name or by index.
type PortAssignment struct {
	Param      *string
	ParamIndex *int
}

// ResolveTargetPort decides which input port an unlabeled connection should
// bind to. An explicit port (name or index) is used unmodified. For binary
// arithmetic targets the first canonical port "A" is assigned unless an
// existing inbound connection already occupies it (name "A" or index 0), in
// which case "B" is used. Other target types get no assignment and the peer
// applies its own default. The heuristic is greedy and order-independent: it
// only considers presence on port A, never packing beyond two inputs.
func ResolveTargetPort(targetType, targetID string, existing []Connection, param *string, paramIndex *int) PortAssignment {
	if param != nil || paramIndex != nil {
		return PortAssignment{Param: param, ParamIndex: paramIndex}
	}
	if !binaryInputTypes[targetType] {
		return PortAssignment{}
	}
	port := "A"
	for _, conn := range existing {
		if conn.TargetID != targetID {
			continue
		}
		if conn.TargetParam == "A" || (conn.TargetParamIndex != nil && *conn.TargetParamIndex == 0) {
			port = "B"
			break
		}
	}
	return PortAssignment{Param: &port}
}
