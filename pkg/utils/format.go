// Package utils contains small value-formatting helpers shared by the
// export renderers and the CLI reports.
package utils

import (
	"fmt"
	"strconv"
)

// Stringify renders a document value as cell text. Nil becomes the
// empty string so absent fields leave their column blank. Integer
// widths cover the types the MongoDB driver decodes numbers into.
func Stringify(val interface{}) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int32:
		return strconv.Itoa(int(v))
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// YesNo renders booleans the way the HTML export displays room
// availability. Anything else falls back to Stringify.
func YesNo(val interface{}) string {
	if b, ok := val.(bool); ok {
		if b {
			return "Yes"
		}
		return "No"
	}
	return Stringify(val)
}
