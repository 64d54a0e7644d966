// Init command: creates config and data directories up front.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the realty configuration and data directories",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Stores were already opened by the persistent pre-run; reaching
		// here means the directories and backing files are in place.
		fmt.Println("Realty office storage initialized")
		return nil
	},
}
