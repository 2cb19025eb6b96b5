package action

import "github.com/rhinomcp/grasshopper-mcp/grasshopper"

// ResultMap extracts a successful response's result as a generic object. The
// second return is false when the exchange failed or the result is not an
// object.
func ResultMap(response *grasshopper.Response) (map[string]interface{}, bool) {
	if response == nil || !response.Success {
		return nil, false
	}
	m, ok := response.Result.(map[string]interface{})
	return m, ok
}

// ResultSlice extracts a successful response's result as a generic list.
func ResultSlice(response *grasshopper.Response) ([]interface{}, bool) {
	if response == nil || !response.Success {
		return nil, false
	}
	s, ok := response.Result.([]interface{})
	return s, ok
}

// String reads a string field from a generic object, returning the fall-back
// when absent or of a different type.
func String(m map[string]interface{}, key, fallback string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return fallback
}

// Number reads a numeric field from a generic object, returning the fall-back
// when absent. JSON decoding always yields float64 for numbers.
func Number(m map[string]interface{}, key string, fallback float64) float64 {
	if v, ok := m[key].(float64); ok {
		return v
	}
	return fallback
}
