package utils

import (
	"fmt"
	"strconv"
	"time"
)

// ToString converts a scanned column value to its string form.
// NULL (nil) becomes the empty string so that absent and empty values compare equal.
func ToString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case int:
		return strconv.Itoa(v)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case time.Time:
		if v.IsZero() {
			return ""
		}
		return v.Format(time.DateOnly)
	case *time.Time:
		if v == nil {
			return ""
		}
		return ToString(*v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
