package main

import (
	"errors"
	"fmt"
	"os"
)

// Exit codes for different failure modes
const (
	ExitSuccess = 0 // Evaluation completed
	ExitInvalid = 1 // Run file failed validation
	ExitError   = 2 // Configuration or runtime error
)

// InvalidRunFileError indicates the run file was read successfully but did
// not pass schema validation.
type InvalidRunFileError struct {
	Message string
}

func (e *InvalidRunFileError) Error() string {
	return e.Message
}

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		var invalidErr *InvalidRunFileError
		if errors.As(err, &invalidErr) {
			os.Exit(ExitInvalid)
		}

		// All other errors are configuration/runtime errors
		os.Exit(ExitError)
	}
}
