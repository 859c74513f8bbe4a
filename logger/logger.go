package logger

import (
	"log"
	"os"
)

// ProgressLogger logs the main steps of the font resolution.
var ProgressLogger = log.New(os.Stdout, "fontvalues.progress: ", log.LstdFlags)

// WarningLogger emits a warning for each non fatal error, like invalid
// CSS font values or font loading failures.
var WarningLogger = log.New(os.Stdout, "fontvalues.warning: ", log.Lmsgprefix)
