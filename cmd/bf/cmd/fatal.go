package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/pkg/errors"
)

// Commands end through these, so tests can count failures instead of exiting.
var (
	logFatalln = log.Fatalln
	logFatalf  = log.Fatalf
	osExit     = os.Exit
)

// infoLogger prints command results on stdout, one record per call
var infoLogger = log.New(os.Stdout, "", 0)

// wrapFatalln ends the command with status 1. A non-nil cause is appended to msg.
func wrapFatalln(msg string, cause error) {
	if cause == nil {
		logFatalln(msg)
		return
	}
	logFatalln(errors.Wrap(cause, msg))
}

// wrapFatalWithCodef ends the command with an exit status telling the failure
// apart, such as unix.ENOENT for a missing item.
func wrapFatalWithCodef(code int, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	log.New(os.Stderr, "", 0).Println(msg)
	osExit(code)
}
