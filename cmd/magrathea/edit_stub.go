//go:build !ebiten

package main

import (
	"fmt"
	"os"

	"magrathea/internal/config"
)

func edit(*config.Config) error {
	fmt.Fprintln(os.Stderr, "The editor requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/magrathea edit` or use `magrathea view` in a terminal.")
	os.Exit(2)
	return nil
}
