package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/MareMare/pdf-visual-diff/internal/adapters/driving/cli"
	"github.com/MareMare/pdf-visual-diff/internal/core/domain"
)

func main() {
	err := cli.Execute()
	if err == nil {
		return
	}
	if errors.Is(err, domain.ErrDifferencesFound) {
		os.Exit(1)
	}
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(2)
}
