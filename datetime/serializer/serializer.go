// Package serializer projects date and time values to and from dicts for
// tool interchange. The dict shape, a type tag plus a class tag plus the
// format-specific fields, is a wire contract shared with other
// implementations and must stay bit-exact:
//
//	{
//	    "__type__": "DateTimeValues",
//	    "__class_name__": "PosixTime",
//	    "timestamp": 1281643591,
//	}
//
// The time zone offset and local time flag appear only when non-default.
// Reconstruction dispatches on the class tag through the datetime registry,
// so callers must import the formats package (directly or blank) for its
// registrations.
package serializer

import (
	"errors"
	"fmt"

	"github.com/theory/dtnorm/datetime"
)

// ErrSerializer wraps errors returned by the serializer package.
var ErrSerializer = errors.New("serializer")

// typeTag marks every serialized date and time value.
const typeTag = "DateTimeValues"

// CopyToDict projects value into its dict form.
func CopyToDict(value datetime.DateTimeValues) (map[string]any, error) {
	conv, ok := value.(datetime.DictConvertible)
	if !ok {
		return nil, fmt.Errorf(
			"%w: unsupported date time values type: %T", ErrSerializer, value,
		)
	}

	dict := conv.CopyToDict()
	dict["__type__"] = typeTag
	dict["__class_name__"] = conv.Tag()
	if offset := value.TimeZoneOffset(); offset != 0 {
		dict["time_zone_offset"] = offset
	}
	if value.IsLocalTime() {
		dict["is_local_time"] = true
	}
	return dict, nil
}

// CopyFromDict reconstructs a date and time value from its dict form.
func CopyFromDict(dict map[string]any) (datetime.DateTimeValues, error) {
	if tag, ok := dict["__type__"].(string); !ok || tag != typeTag {
		return nil, fmt.Errorf("%w: unsupported type: %v", ErrSerializer, dict["__type__"])
	}
	className, ok := dict["__class_name__"].(string)
	if !ok {
		return nil, fmt.Errorf(
			"%w: missing class name: %v", ErrSerializer, dict["__class_name__"],
		)
	}

	value, ok := datetime.New(className)
	if !ok {
		return nil, fmt.Errorf("%w: unknown class name %q", ErrSerializer, className)
	}
	conv, ok := value.(datetime.DictConvertible)
	if !ok {
		return nil, fmt.Errorf(
			"%w: unsupported date time values type: %T", ErrSerializer, value,
		)
	}
	if err := conv.CopyFromDict(dict); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializer, err)
	}

	if raw, ok := dict["time_zone_offset"]; ok {
		offset, ok := datetime.IntValue(raw)
		if !ok {
			return nil, fmt.Errorf(
				"%w: invalid time_zone_offset attribute %v", ErrSerializer, raw,
			)
		}
		value.SetTimeZoneOffset(int(offset))
	}
	if isLocal, ok := dict["is_local_time"].(bool); ok && isLocal {
		value.SetIsLocalTime(true)
	}
	return value, nil
}
