// History command: prints the activity journal.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the recorded mutation history",
	RunE:  runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	entries, err := app.journal.Entries()
	if err != nil {
		return fmt.Errorf("read journal: %w", err)
	}
	return printResult(entries, func() {
		for _, e := range entries {
			fmt.Printf("%s\t%s %s %d\n", e.At.Format("2006-01-02 15:04:05"), e.Entity, e.Action, e.EntityID)
		}
	})
}
