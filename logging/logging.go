// The logging package provides the pre-configured loggers used across the
// module. ErrLog is reserved for errors that should abort (via Fatalf/Panicln)
// or that indicate device/programmer faults, WarnLog for recoverable
// diagnostics (e.g. a draw referencing a missing texture), and InfoLog for
// everything else.
package logging

import (
	"log"
	"os"
)

var (
	InfoLog = log.New(os.Stdout, "[INFO] ", log.Ltime|log.Lshortfile)
	WarnLog = log.New(os.Stdout, "[WARN] ", log.Ltime|log.Lshortfile)
	ErrLog  = log.New(os.Stderr, "[ERROR] ", log.Ltime|log.Lshortfile)
)
