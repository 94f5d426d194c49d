package hal

// Shared payload helpers. Control payloads arrive as JSON-shaped
// map[string]any; these keep the adaptors free of type-switch noise.

func mapFromAny(v any) map[string]any {
	if m, ok := v.(map[string]any); ok {
		return m
	}
	return map[string]any{}
}

func asString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// wantBool extracts a boolean from either a map payload (by key) or a
// scalar. Recognises true/false, non-zero numbers, on/off, yes/no.
func wantBool(src any, key string) bool {
	if m, ok := src.(map[string]any); ok {
		if v, ok := m[key]; ok {
			return wantBool(v, "")
		}
		return false
	}
	switch v := src.(type) {
	case bool:
		return v
	case int:
		return v != 0
	case int64:
		return v != 0
	case uint:
		return v != 0
	case float64:
		return v != 0
	case string:
		switch v {
		case "1", "true", "on", "yes", "TRUE", "ON", "YES":
			return true
		}
	}
	return false
}

// wantInt extracts an integer from a map payload (by key) or a scalar;
// -1 when absent or not a number. JSON decoding hands numbers over as
// float64.
func wantInt(src any, key string) int {
	if m, ok := src.(map[string]any); ok {
		if v, ok := m[key]; ok {
			return wantInt(v, "")
		}
		return -1
	}
	switch v := src.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case uint:
		return int(v)
	case uint32:
		return int(v)
	case float64:
		return int(v)
	}
	return -1
}

// wantBytes extracts a byte payload: []byte passes through, strings are
// converted.
func wantBytes(src any, key string) []byte {
	if m, ok := src.(map[string]any); ok {
		if v, ok := m[key]; ok {
			return wantBytes(v, "")
		}
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return v
	case string:
		return []byte(v)
	}
	return nil
}
