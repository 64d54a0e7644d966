// Listing subcommands for the realty CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vkotliar/realty/pkg/types"
)

var (
	listingType        string
	listingAddress     string
	listingPrice       int64
	listingArea        float64
	listingRooms       int
	listingDescription string
	listingAvailable   bool
	listingMinPrice    int64
	listingMaxPrice    int64
	listingSortKey     string
)

var listingCmd = &cobra.Command{
	Use:   "listing",
	Short: "Manage real-estate listings",
}

var listingAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Register a new listing",
	Example: `  realty listing add --type one_room_apartment --address "12 Main St" --price 100000 --area 38.5
  realty listing add --type private_plot --address "Old Rd 4" --price 55000 --area 600 --description "south slope"`,
	RunE: runListingAdd,
}

var listingGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a listing by id",
	Args:  cobra.ExactArgs(1),
	RunE:  runListingGet,
}

var listingListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all listings",
	RunE:  runListingList,
}

var listingUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a listing's fields",
	Args:  cobra.ExactArgs(1),
	RunE:  runListingUpdate,
}

var listingDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a listing",
	Args:  cobra.ExactArgs(1),
	RunE:  runListingDelete,
}

var listingSearchCmd = &cobra.Command{
	Use:   "search [keyword]",
	Short: "Search listings by address, type, price, or rooms",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runListingSearch,
}

var listingFindCmd = &cobra.Command{
	Use:   "find",
	Short: "Find available listings by criteria",
	Long: `Find filters available listings by optional type and price bounds.
Only listings currently marked available are returned.`,
	Example: `  realty listing find --type one_room_apartment --max-price 150000
  realty listing find --min-price 50000 --max-price 90000`,
	RunE: runListingFind,
}

var listingSortCmd = &cobra.Command{
	Use:   "sort",
	Short: "List listings sorted by type or price",
	RunE:  runListingSort,
}

func init() {
	listingAddCmd.Flags().StringVar(&listingType, "type", "", "listing type (required)")
	listingAddCmd.Flags().StringVar(&listingAddress, "address", "", "address (required)")
	listingAddCmd.Flags().Int64Var(&listingPrice, "price", 0, "price, must be > 0 (required)")
	listingAddCmd.Flags().Float64Var(&listingArea, "area", 0, "area, must be > 0 (required)")
	listingAddCmd.Flags().IntVar(&listingRooms, "rooms", 0, "room count")
	listingAddCmd.Flags().StringVar(&listingDescription, "description", "", "free-text description")
	listingAddCmd.Flags().BoolVar(&listingAvailable, "available", true, "availability flag")

	listingUpdateCmd.Flags().StringVar(&listingType, "type", "", "listing type")
	listingUpdateCmd.Flags().StringVar(&listingAddress, "address", "", "address")
	listingUpdateCmd.Flags().Int64Var(&listingPrice, "price", 0, "price")
	listingUpdateCmd.Flags().Float64Var(&listingArea, "area", 0, "area")
	listingUpdateCmd.Flags().IntVar(&listingRooms, "rooms", 0, "room count")
	listingUpdateCmd.Flags().StringVar(&listingDescription, "description", "", "free-text description")
	listingUpdateCmd.Flags().BoolVar(&listingAvailable, "available", true, "availability flag")

	listingFindCmd.Flags().StringVar(&listingType, "type", "", "listing type filter")
	listingFindCmd.Flags().Int64Var(&listingMinPrice, "min-price", 0, "minimum price filter")
	listingFindCmd.Flags().Int64Var(&listingMaxPrice, "max-price", 0, "maximum price filter")

	listingSortCmd.Flags().StringVar(&listingSortKey, "by", "price", "sort key: type, price")

	listingCmd.AddCommand(listingAddCmd)
	listingCmd.AddCommand(listingGetCmd)
	listingCmd.AddCommand(listingListCmd)
	listingCmd.AddCommand(listingUpdateCmd)
	listingCmd.AddCommand(listingDeleteCmd)
	listingCmd.AddCommand(listingSearchCmd)
	listingCmd.AddCommand(listingFindCmd)
	listingCmd.AddCommand(listingSortCmd)
}

func runListingAdd(cmd *cobra.Command, args []string) error {
	t, err := types.ParseListingType(listingType)
	if err != nil {
		return err
	}
	listing := &types.Listing{
		Type:        t,
		Address:     listingAddress,
		Price:       listingPrice,
		Area:        listingArea,
		Rooms:       listingRooms,
		Description: listingDescription,
		Available:   listingAvailable,
	}
	added, err := app.listings.AddListing(listing)
	if err != nil {
		return err
	}
	return printResult(added, func() {
		fmt.Printf("Created listing %d: %s at %s\n", added.ID, added.Type, added.Address)
	})
}

func runListingGet(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	listing, err := app.listings.GetByID(id)
	if err != nil {
		return err
	}
	return printResult(listing, func() { printListingLine(listing) })
}

func runListingList(cmd *cobra.Command, args []string) error {
	listings := app.listings.GetAll()
	return printResult(listings, func() {
		for _, l := range listings {
			printListingLine(l)
		}
	})
}

func runListingUpdate(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	listing, err := app.listings.GetByID(id)
	if err != nil {
		return err
	}
	// Work on a copy so a rejected update leaves the loaded record alone.
	updated := *listing
	if cmd.Flags().Changed("type") {
		t, err := types.ParseListingType(listingType)
		if err != nil {
			return err
		}
		updated.Type = t
	}
	if cmd.Flags().Changed("address") {
		updated.Address = listingAddress
	}
	if cmd.Flags().Changed("price") {
		updated.Price = listingPrice
	}
	if cmd.Flags().Changed("area") {
		updated.Area = listingArea
	}
	if cmd.Flags().Changed("rooms") {
		updated.Rooms = listingRooms
	}
	if cmd.Flags().Changed("description") {
		updated.Description = listingDescription
	}
	if cmd.Flags().Changed("available") {
		updated.Available = listingAvailable
	}
	if err := app.listings.UpdateListing(&updated); err != nil {
		return err
	}
	return printResult(&updated, func() {
		fmt.Printf("Updated listing %d\n", updated.ID)
	})
}

func runListingDelete(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	if err := app.listings.DeleteListing(id); err != nil {
		return err
	}
	fmt.Printf("Deleted listing %d\n", id)
	return nil
}

func runListingSearch(cmd *cobra.Command, args []string) error {
	keyword := ""
	if len(args) > 0 {
		keyword = args[0]
	}
	listings := app.listings.Search(keyword)
	return printResult(listings, func() {
		for _, l := range listings {
			printListingLine(l)
		}
	})
}

func runListingFind(cmd *cobra.Command, args []string) error {
	t, err := parseTypeFlag(listingType)
	if err != nil {
		return err
	}
	var minPrice, maxPrice *int64
	if cmd.Flags().Changed("min-price") {
		minPrice = &listingMinPrice
	}
	if cmd.Flags().Changed("max-price") {
		maxPrice = &listingMaxPrice
	}
	listings := app.listings.FindByCriteria(t, minPrice, maxPrice)
	return printResult(listings, func() {
		for _, l := range listings {
			printListingLine(l)
		}
	})
}

func runListingSort(cmd *cobra.Command, args []string) error {
	var listings []*types.Listing
	switch listingSortKey {
	case "type":
		listings = app.listings.SortByType()
	case "price":
		listings = app.listings.SortByPrice()
	default:
		return fmt.Errorf("unknown sort key %q", listingSortKey)
	}
	return printResult(listings, func() {
		for _, l := range listings {
			printListingLine(l)
		}
	})
}
