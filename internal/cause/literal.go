package cause

import (
	"fmt"
	"strings"
)

// diagnoseLiteral tests the subject for equality against the permitted
// literal set; the explanation lists every permitted value.
func diagnoseLiteral(c *Context) (Finding, error) {
	literals := c.cls.Node.Literals()
	for _, lit := range literals {
		if LiteralsEqual(c.subject, lit) {
			return Finding{}, nil
		}
	}
	rendered := make([]string, len(literals))
	for i, lit := range literals {
		rendered[i] = c.repr(lit)
	}
	return found(fmt.Sprintf("value %s is not one of the permitted literals [%s]",
		c.repr(c.subject), strings.Join(rendered, ", "))), nil
}
