package observe

import (
	"fmt"
	"reflect"
	"strconv"
)

// Scalar is the set of primitive kinds an observable leaf can hold.
// Named types with these underlying kinds are included.
type Scalar interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 | ~string | ~bool
}

// formatScalar returns the canonical, locale-independent text form of v:
// decimal for integers, shortest round-tripping form for floats, "true"/
// "false" for bools, and the raw string for strings.
func formatScalar(v any) string {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 64)
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	case reflect.String:
		return rv.String()
	default:
		// Unreachable for Scalar-constrained values.
		return fmt.Sprint(v)
	}
}

// parseScalar parses s with the exact inverse of formatScalar. On failure
// the returned error wraps ErrMalformedValue and the zero value is
// returned; callers must leave their prior value in place.
func parseScalar[T Scalar](s string) (T, error) {
	var v T
	rv := reflect.ValueOf(&v).Elem()
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(s, 10, rv.Type().Bits())
		if err != nil {
			return v, malformed(s, rv.Type())
		}
		rv.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(s, 10, rv.Type().Bits())
		if err != nil {
			return v, malformed(s, rv.Type())
		}
		rv.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, rv.Type().Bits())
		if err != nil {
			return v, malformed(s, rv.Type())
		}
		rv.SetFloat(f)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return v, malformed(s, rv.Type())
		}
		rv.SetBool(b)
	case reflect.String:
		rv.SetString(s)
	}
	return v, nil
}

func malformed(s string, t reflect.Type) error {
	return fmt.Errorf("%w: cannot parse %q as %s", ErrMalformedValue, s, t)
}
