package main

import (
	"fmt"
	"os"

	prismerrors "github.com/alexisbeaulieu97/prism/pkg/errors"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(prismerrors.ExitCode(err))
	}
}
