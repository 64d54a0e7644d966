// Shared output and parsing helpers for the realty CLI.
package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/vkotliar/realty/pkg/types"
)

// printResult renders v as indented JSON when --json is set, otherwise
// calls text for the human rendering.
func printResult(v any, text func()) error {
	if flagJSON {
		out, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal output: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}
	text()
	return nil
}

// parseID parses a positional identity argument.
func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q: expected a positive integer", arg)
	}
	return id, nil
}

// parseTypeFlag parses an optional --type flag value. Empty means unset.
func parseTypeFlag(value string) (*types.ListingType, error) {
	if value == "" {
		return nil, nil
	}
	t, err := types.ParseListingType(value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// printClientLine renders one client on one line.
func printClientLine(c *types.Client) {
	fmt.Printf("%d\t%s\tacct:%s\t%s\tproposals:%d\n",
		c.ID, c.FullName(), c.BankAccount, c.ContactInfo, len(c.ProposedListingIDs))
}

// printListingLine renders one listing on one line.
func printListingLine(l *types.Listing) {
	avail := "available"
	if !l.Available {
		avail = "unavailable"
	}
	fmt.Printf("%d\t%s\t%s\tprice:%d\tarea:%.1f\t%s\n",
		l.ID, l.Type, l.Address, l.Price, l.Area, avail)
}

// printOfferLine renders one offer on one line.
func printOfferLine(o *types.Offer) {
	fmt.Printf("%d\tclient:%d\tlistings:%v\tresponses:%d\n",
		o.ID, o.ClientID, o.ListingIDs, len(o.Responses))
}
