package logscan

import (
	"io"
	"log"
)

var (
	// call SetOutput on InfoLogger to enable info logging
	InfoLogger = log.New(io.Discard, "[logscan][info] ", log.LstdFlags)

	// call SetOutput on DebugLogger to enable per-line diagnostics
	DebugLogger = log.New(io.Discard, "[logscan][debug] ", log.LstdFlags)
)
