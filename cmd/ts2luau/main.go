package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/ts2luau/cmd/ts2luau/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
