package datetime

import "encoding/json"

// DictConvertible is implemented by date and time values that expose their
// format-specific fields as a dict. The field names and value shapes are a
// wire contract shared with other implementations and must not change.
type DictConvertible interface {
	// Tag returns the registry tag of the value's format.
	Tag() string

	// CopyToDict returns the format-specific fields, such as
	// {"timestamp": 1281643591}. Shared fields (class name, time zone
	// offset, local time flag) are the serializer's responsibility.
	CopyToDict() map[string]any

	// CopyFromDict sets the format-specific fields. Unknown keys are
	// ignored; missing keys leave the value unset.
	CopyFromDict(dict map[string]any) error
}

// IntValue coerces a dict field to an integer. Dicts decoded from JSON carry
// numbers as float64 or json.Number, while dicts built in process carry
// native integer types; serialized timestamps must survive both.
func IntValue(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint32:
		return int64(n), true
	case uint64:
		return int64(n), n <= 1<<63-1
	case float64:
		return int64(n), n == float64(int64(n))
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	default:
		return 0, false
	}
}

// IntSlice coerces a dict field to a slice of integers, accepting the []any
// produced by JSON decoding as well as native int slices.
func IntSlice(v any) ([]int, bool) {
	switch s := v.(type) {
	case []int:
		return s, true
	case []int64:
		values := make([]int, len(s))
		for i, n := range s {
			values[i] = int(n)
		}
		return values, true
	case []any:
		values := make([]int, len(s))
		for i, e := range s {
			n, ok := IntValue(e)
			if !ok {
				return nil, false
			}
			values[i] = int(n)
		}
		return values, true
	default:
		return nil, false
	}
}
