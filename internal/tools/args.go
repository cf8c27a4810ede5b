package tools

import "fmt"

// ValidationError marks a missing required parameter, detected before any
// remote call is made.
type ValidationError struct {
	Param string
}

func (e *ValidationError) Error() string {
	return "missing required parameter: " + e.Param
}

// GetStringArg extracts a string argument or returns the default.
func GetStringArg(args map[string]any, key, def string) string {
	if v, ok := args[key].(string); ok && v != "" {
		return v
	}
	return def
}

// GetIntArg extracts an integer argument. JSON numbers arrive as float64.
func GetIntArg(args map[string]any, key string, def int) int {
	switch v := args[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case int64:
		return int(v)
	}
	return def
}

// GetBoolArg extracts a boolean argument or returns the default.
func GetBoolArg(args map[string]any, key string, def bool) bool {
	if v, ok := args[key].(bool); ok {
		return v
	}
	return def
}

// GetMapArg extracts an object argument, never returning nil.
func GetMapArg(args map[string]any, key string) map[string]any {
	if v, ok := args[key].(map[string]any); ok {
		return v
	}
	return map[string]any{}
}

// GetStringSliceArg extracts a string-array argument or returns the
// default. Decoded JSON arrays arrive as []any.
func GetStringSliceArg(args map[string]any, key string, def []string) []string {
	switch v := args[key].(type) {
	case []string:
		if len(v) > 0 {
			return v
		}
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, fmt.Sprintf("%v", item))
		}
		if len(out) > 0 {
			return out
		}
	}
	return def
}
