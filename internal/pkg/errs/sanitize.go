package errs

import (
	"fmt"
	"strings"
)

var newlineReplacer = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// sanitize renders a value on a single line so it cannot break log records.
func sanitize(v any) string {
	return newlineReplacer.Replace(fmt.Sprintf("%v", v))
}
