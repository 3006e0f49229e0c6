package validate

import (
	"fmt"
	"strings"
)

// Required checks that every named string field is present after trimming.
// Returns a message naming the first missing field, or "" when all pass.
func Required(fields map[string]string, order ...string) string {
	for _, name := range order {
		if strings.TrimSpace(fields[name]) == "" {
			return fmt.Sprintf("%s is required", name)
		}
	}
	return ""
}

// PositiveID checks that a foreign key field holds a positive integer.
func PositiveID(name string, id uint) string {
	if id == 0 {
		return fmt.Sprintf("%s is required", name)
	}
	return ""
}
