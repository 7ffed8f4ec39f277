package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fieldlens/fieldlens/internal/runfile"
)

func newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <run.yaml>",
		Short: "Validate a run file against the schema without evaluating it",
		Args:  cobra.ExactArgs(1),
		RunE:  checkCommandE,
	}
}

func checkCommandE(_ *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading run file: %w", err)
	}

	errs := runfile.ValidateBytes(data)
	if len(errs) == 0 {
		fmt.Printf("%s is valid\n", args[0])
		return nil
	}

	msg := fmt.Sprintf("%s has %d problem(s):\n", args[0], len(errs))
	for _, e := range errs {
		msg += "  - " + e + "\n"
	}
	return &InvalidRunFileError{Message: msg}
}
