package records

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ID is an entity identifier in canonical string form. Identifiers arriving
// as JSON numbers or strings end up identical, so 2 and "2" compare equal.
type ID string

// ParseID converts a loosely typed identifier into its canonical form.
// Integral floats lose their fraction, strings are trimmed and nil yields "".
func ParseID(v any) ID {
	switch x := v.(type) {
	case nil:
		return ""
	case ID:
		return x.canonical()
	case string:
		return ID(x).canonical()
	case json.Number:
		return fromNumber(string(x))
	case int:
		return ID(strconv.Itoa(x))
	case int32:
		return ID(strconv.FormatInt(int64(x), 10))
	case int64:
		return ID(strconv.FormatInt(x, 10))
	case uint:
		return ID(strconv.FormatUint(uint64(x), 10))
	case uint32:
		return ID(strconv.FormatUint(uint64(x), 10))
	case uint64:
		return ID(strconv.FormatUint(x, 10))
	case float32:
		return fromFloat(float64(x))
	case float64:
		return fromFloat(x)
	case fmt.Stringer:
		return ID(x.String()).canonical()
	default:
		return ID(fmt.Sprint(x)).canonical()
	}
}

func fromNumber(s string) ID {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return ID(strconv.FormatInt(i, 10))
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return fromFloat(f)
	}
	return ID(s).canonical()
}

func fromFloat(f float64) ID {
	if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
		return ID(strconv.FormatInt(int64(f), 10))
	}
	return ID(strconv.FormatFloat(f, 'f', -1, 64))
}

func (id ID) canonical() ID {
	return ID(strings.TrimSpace(string(id)))
}

func (id ID) String() string {
	return string(id.canonical())
}

// IsZero reports whether the identifier is empty.
func (id ID) IsZero() bool {
	return id.canonical() == ""
}

// Equal compares identifiers in canonical form. Two empty identifiers are not equal.
func (id ID) Equal(other ID) bool {
	a, b := id.canonical(), other.canonical()
	return a != "" && a == b
}

// UnmarshalJSON accepts a JSON string, number or null.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidID, err)
		}
		*id = ID(s).canonical()
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidID, string(data))
	}
	*id = fromNumber(string(n))
	return nil
}
