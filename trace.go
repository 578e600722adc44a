package calc

import (
	"fmt"
	"strings"
)

// enter traces entry into a production. Call the returned function on exit.
func (c *parseContext) enter(production string) func() {
	if c.trace == nil {
		return func() {}
	}
	tok := c.Peek()
	fmt.Fprintf(c.trace, "%s%q %s\n", strings.Repeat(" ", c.indent), tok, production)
	c.indent += 2
	return func() { c.indent -= 2 }
}
