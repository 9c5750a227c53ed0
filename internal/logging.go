package internal

import (
	"io"
	"log"
)

// InitLogging routes the standard logger to w. Pass io.Discard to silence it.
func InitLogging(w io.Writer) {
	log.SetOutput(w)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
}
