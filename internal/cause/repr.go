package cause

import (
	"fmt"
	"strconv"
)

// repr renders a compact preview of a subject for explanation text,
// truncated to the configured rune limit.
func (c *Context) repr(v any) string {
	limit := 64
	if c.cfg != nil && c.cfg.ReprLimit > 0 {
		limit = c.cfg.ReprLimit
	}
	return truncateRunes(preview(v), limit)
}

func preview(v any) string {
	switch s := v.(type) {
	case nil:
		return "<nil>"
	case string:
		return strconv.Quote(s)
	case error:
		return strconv.Quote(s.Error())
	default:
		return fmt.Sprintf("%v", v)
	}
}

func truncateRunes(s string, limit int) string {
	if limit <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	return string(runes[:limit-3]) + "..."
}
