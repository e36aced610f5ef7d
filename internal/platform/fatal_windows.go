package platform

import (
	"fmt"
	"os"

	"golang.org/x/sys/windows"
)

// ReportFatal shows a blocking error box; GUI subsystem builds have no console
func ReportFatal(title, message string) {
	t, err := windows.UTF16PtrFromString(title)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", title, message)
		return
	}
	m, err := windows.UTF16PtrFromString(message)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", title, message)
		return
	}
	if _, err := windows.MessageBox(0, m, t, windows.MB_OK|windows.MB_ICONERROR); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", title, message)
	}
}
