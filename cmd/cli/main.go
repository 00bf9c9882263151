package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/Utility-Gods/tempcon/internal/cli"
)

func main() {
	err := cli.New(os.Stdin, os.Stdout).Run()
	switch {
	case err == nil:
		fmt.Println("\nProgram finished normally.")
	case errors.Is(err, cli.ErrQuit):
		// The quit confirmation was already printed at the prompt.
	default:
		msg := fmt.Sprintf("Program terminated due to I/O error: %v", err)
		fmt.Fprintln(os.Stderr, cli.DefaultStyles().Error.Render(msg))
		os.Exit(1)
	}
}
