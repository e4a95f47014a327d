package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/ppc-cli/ppc/cmd"
	kerrors "github.com/ppc-cli/ppc/internal/errors"
	"github.com/ppc-cli/ppc/internal/ui"
)

func main() {
	if err := cmd.RootCmd.Execute(); err != nil {
		if !errors.Is(err, kerrors.ErrReported) {
			fmt.Fprintln(os.Stderr, ui.Error.Sprint("Error:")+" "+err.Error())
		}
		os.Exit(1)
	}
}
