// Package main provides the realty CLI, the caller layer over the office
// services.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/vkotliar/realty/pkg/types"
)

// Exit codes: user errors (validation, not found, business rules) and
// system errors (persistence, config) are distinguished for scripting.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		if errors.Is(err, types.ErrPersistence) {
			os.Exit(exitSysError)
		}
		os.Exit(exitUserError)
	}
}
