package main

import (
	"fmt"
	"os"

	"github.com/promptdeck/promptdeck/cmd/commands"
	"github.com/promptdeck/promptdeck/internal/errors"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		handler := errors.NewCLIErrorHandler(os.Getenv("PROMPTDECK_DEBUG") != "")
		fmt.Fprintln(os.Stderr, handler.HandleError(err))
		os.Exit(1)
	}
}
