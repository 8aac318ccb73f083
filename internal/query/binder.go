// Package query implements the statement binder: named-placeholder SQL
// templates are rewritten to the driver's positional form and every value
// travels through database/sql's parameter channel. Statement text is
// always a compile-time constant at the call site; no client-supplied
// value is ever concatenated into it, so a value containing statement
// terminators or comment openers is just an opaque scalar to the store.
package query

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrMissingParam is returned when a template references a placeholder
// that the parameter map does not supply. This is a programmer error:
// callers must treat it as an internal fault, never as client input
// validation, and must not send anything to the store.
var ErrMissingParam = errors.New("missing statement parameter")

// ErrBadParamType is returned when a parameter value is not one of the
// scalar kinds the store can bind (string, number, bool, bytes, time,
// nil, or *string for nullable columns).
var ErrBadParamType = errors.New("unsupported statement parameter type")

// Bind rewrites a template containing :name placeholders into positional
// `?` form and returns the argument list in placeholder occurrence order.
// A name may appear more than once; its value is emitted once per
// occurrence. "::" escapes a literal colon.
func Bind(template string, params map[string]any) (string, []any, error) {
	var sb strings.Builder
	sb.Grow(len(template))
	args := make([]any, 0, len(params))
	for i := 0; i < len(template); {
		ch := template[i]
		if ch != ':' {
			sb.WriteByte(ch)
			i++
			continue
		}
		if i+1 < len(template) && template[i+1] == ':' {
			sb.WriteByte(':')
			i += 2
			continue
		}
		j := i + 1
		for j < len(template) && isIdentChar(template[j]) {
			j++
		}
		if j == i+1 {
			// Bare colon with no identifier after it; leave it alone.
			sb.WriteByte(':')
			i++
			continue
		}
		name := template[i+1 : j]
		v, ok := params[name]
		if !ok {
			return "", nil, fmt.Errorf("%w: %s", ErrMissingParam, name)
		}
		if err := checkKind(v); err != nil {
			return "", nil, fmt.Errorf("%s: %w", name, err)
		}
		sb.WriteByte('?')
		args = append(args, v)
		i = j
	}
	return sb.String(), args, nil
}

func isIdentChar(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}

// checkKind admits only the scalar kinds the driver binds natively.
// Structs, maps, and slices (other than []byte) indicate a caller bug
// and are rejected before anything reaches the store.
func checkKind(v any) error {
	switch v.(type) {
	case nil, string, []byte, bool, time.Time, *string,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return nil
	default:
		return ErrBadParamType
	}
}
