package metrics

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgtype"
)

// asString returns the textual form of a grouping column, ok is false for NULL
func asString(v any) (s string, ok bool) {
	switch t := v.(type) {
	case nil:
		return "", false
	case string:
		return t, true
	case []byte:
		return string(t), true
	case fmt.Stringer:
		return t.String(), true
	default:
		return fmt.Sprint(t), true
	}
}

// asInt64 converts a counter column, NULL and unparsable values count as zero
func asInt64(v any) int64 {
	switch t := v.(type) {
	case int64:
		return t
	case int32:
		return int64(t)
	case int16:
		return int64(t)
	case int:
		return int64(t)
	case uint32:
		return int64(t)
	case uint64:
		if t > math.MaxInt64 {
			return math.MaxInt64
		}
		return int64(t)
	case float64:
		return int64(t)
	case float32:
		return int64(t)
	case string:
		i, _ := strconv.ParseInt(strings.TrimSpace(t), 10, 64)
		return i
	case []byte:
		i, _ := strconv.ParseInt(strings.TrimSpace(string(t)), 10, 64)
		return i
	case pgtype.Int64Valuer: // numeric aggregates
		if i, err := t.Int64Value(); err == nil && i.Valid {
			return i.Int64
		}
		return 0
	default:
		return 0
	}
}

// flag is a tri-state boolean column value
type flag int

const (
	flagUnknown flag = iota
	flagTrue
	flagFalse
)

func asFlag(v any) flag {
	switch t := v.(type) {
	case bool:
		if t {
			return flagTrue
		}
		return flagFalse
	case string:
		switch strings.ToLower(t) {
		case "t", "true":
			return flagTrue
		case "f", "false":
			return flagFalse
		}
	}
	return flagUnknown
}
