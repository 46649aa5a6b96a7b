package cli

import (
	"fmt"
	"strconv"
)

// requireID parses the first argument as a numeric id; on failure it prints
// usage and reports false.
func (a *App) requireID(args []string, usage string) (int64, bool) {
	if len(args) == 0 {
		fmt.Fprintf(a.out, "Usage: %s\n", usage)
		return 0, false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		fmt.Fprintf(a.out, "%q is not a valid id.\nUsage: %s\n", args[0], usage)
		return 0, false
	}
	return id, true
}
