package formats

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/theory/dtnorm/datetime"
)

// SemanticTime is a date and time that carries meaning but no determinable
// timestamp, such as "Never" or "Not set". Its normalized timestamp is
// always undetermined and its string form is the semantic label itself.
type SemanticTime struct {
	datetime.Values

	tag   string
	value string
}

// NewSemanticTime returns a SemanticTime with the given label.
func NewSemanticTime(value string) *SemanticTime {
	return &SemanticTime{tag: "SemanticTime", value: value}
}

// NewNever returns the semantic value "Never".
func NewNever() *SemanticTime {
	return &SemanticTime{tag: "Never", value: "Never"}
}

// NewNotSet returns the semantic value "Not set".
func NewNotSet() *SemanticTime {
	return &SemanticTime{tag: "NotSet", value: "Not set"}
}

// NewInvalidTime returns the semantic value "Invalid".
func NewInvalidTime() *SemanticTime {
	return &SemanticTime{tag: "InvalidTime", value: "Invalid"}
}

// Tag returns the registry tag of the value.
func (st *SemanticTime) Tag() string { return st.tag }

// String returns the semantic label.
func (st *SemanticTime) String() string { return st.value }

// NormalizedTimestamp always reports false: a semantic value has no
// determinable timestamp.
func (st *SemanticTime) NormalizedTimestamp() (decimal.Decimal, bool) {
	return decimal.Decimal{}, false
}

// CopyFromDateTimeString stores s as the semantic label.
func (st *SemanticTime) CopyFromDateTimeString(s string) error {
	st.value = s
	st.Invalidate()
	return nil
}

// CopyToDateTimeString returns the semantic label.
func (st *SemanticTime) CopyToDateTimeString() (string, bool) {
	return st.value, true
}

// CopyToDict returns the format-specific serialization fields.
func (st *SemanticTime) CopyToDict() map[string]any {
	return map[string]any{"string": st.value}
}

// CopyFromDict sets the semantic label from serialization fields.
func (st *SemanticTime) CopyFromDict(dict map[string]any) error {
	raw, ok := dict["string"]
	if !ok {
		return nil
	}
	value, ok := raw.(string)
	if !ok {
		return fmt.Errorf("%w: invalid string attribute %v", datetime.ErrDateTime, raw)
	}
	st.value = value
	return nil
}

func init() {
	datetime.Register("SemanticTime", func() datetime.DateTimeValues {
		return NewSemanticTime("")
	})
	datetime.Register("Never", func() datetime.DateTimeValues {
		return NewNever()
	})
	datetime.Register("NotSet", func() datetime.DateTimeValues {
		return NewNotSet()
	})
	datetime.Register("InvalidTime", func() datetime.DateTimeValues {
		return NewInvalidTime()
	})
}
