// Availability check command for the realty CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vkotliar/realty/pkg/types"
)

var (
	checkType     string
	checkMaxPrice int64
)

var checkCmd = &cobra.Command{
	Use:     "check",
	Short:   "Check whether an available listing matches a type and price cap",
	Example: `  realty check --type two_room_apartment --max-price 200000`,
	RunE:    runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkType, "type", "", "listing type (required)")
	checkCmd.Flags().Int64Var(&checkMaxPrice, "max-price", 0, "maximum price (required)")
	_ = checkCmd.MarkFlagRequired("type")
	_ = checkCmd.MarkFlagRequired("max-price")
}

func runCheck(cmd *cobra.Command, args []string) error {
	t, err := types.ParseListingType(checkType)
	if err != nil {
		return err
	}
	available := app.proposals.CheckAvailability(t, checkMaxPrice)
	return printResult(map[string]bool{"available": available}, func() {
		if available {
			fmt.Printf("At least one %s at or under %d is available\n", t, checkMaxPrice)
		} else {
			fmt.Printf("No %s at or under %d is available\n", t, checkMaxPrice)
		}
	})
}
