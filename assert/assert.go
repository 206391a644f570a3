package assert

import (
	"fmt"

	"github.com/structuresound/egui/logging"
)

// T panics with the formatted message if cond is false.
// Used for programmer errors that must never be silently tolerated,
// like invalid texture dimensions or use-after-destroy.
func T(cond bool, format string, args ...any) {

	if cond {
		return
	}

	msg := fmt.Sprintf(format, args...)
	logging.ErrLog.Panicln("Assert failed: " + msg)
}
