package errors

import (
	"fmt"
	"os"

	"github.com/joeldevian/myday-rutinas/internal/logger"
)

// Format renders an error with the consistent "Error: " prefix used on stderr.
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Fatal logs the error and exits with code 1.
func Fatal(err error) {
	if err != nil {
		logger.Error("command failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}
