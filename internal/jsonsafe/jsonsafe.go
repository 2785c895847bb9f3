// Package jsonsafe converts database result trees into JSON-safe values.
// Arbitrary-precision decimals become numbers, 64-bit integers become
// base-10 strings, timestamps become RFC 3339 UTC strings, and uuid
// values become canonical strings. Container shapes are preserved;
// unrecognized scalars pass through unchanged.
package jsonsafe

import (
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sanitize walks an arbitrarily nested value and returns an equivalent
// structure containing only JSON-safe primitives. It never fails: source
// data is tree-shaped by construction, so the traversal always terminates.
func Sanitize(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = Sanitize(item)
		}
		return out

	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = Sanitize(item)
		}
		return out

	case []map[string]any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = Sanitize(item)
		}
		return out

	case decimal.Decimal:
		return val.InexactFloat64()

	case *decimal.Decimal:
		if val == nil {
			return nil
		}
		return val.InexactFloat64()

	case int64:
		return strconv.FormatInt(val, 10)

	case uint64:
		return strconv.FormatUint(val, 10)

	// pgx decodes uuid columns as [16]byte
	case [16]byte:
		return uuid.UUID(val).String()

	case uuid.UUID:
		return val.String()

	case time.Time:
		return val.UTC().Format(time.RFC3339)

	case *time.Time:
		if val == nil {
			return nil
		}
		return val.UTC().Format(time.RFC3339)

	default:
		return v
	}
}
