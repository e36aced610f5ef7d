//go:build !windows

package platform

import (
	"fmt"
	"os"
)

// ReportFatal writes the failure to stderr
func ReportFatal(title, message string) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", title, message)
}
