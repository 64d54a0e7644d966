// Offer subcommands for the realty CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vkotliar/realty/pkg/types"
)

var (
	offerClientID   int
	offerListingIDs []int
	offerAccepted   bool
)

var offerCmd = &cobra.Command{
	Use:   "offer",
	Short: "Manage standalone offers",
	Long: `An offer records the set of listings formally offered to one
client together with the client's per-listing responses. At most one offer
may be on file per client.`,
}

var offerCreateCmd = &cobra.Command{
	Use:     "create",
	Short:   "Create an offer for a client",
	Example: `  realty offer create --client 1 --listing 3 --listing 7`,
	RunE:    runOfferCreate,
}

var offerGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show an offer by id",
	Args:  cobra.ExactArgs(1),
	RunE:  runOfferGet,
}

var offerListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all offers",
	RunE:  runOfferList,
}

var offerDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an offer",
	Args:  cobra.ExactArgs(1),
	RunE:  runOfferDelete,
}

var offerAddListingCmd = &cobra.Command{
	Use:   "add-listing <offer-id> <listing-id>",
	Short: "Add a listing to an existing offer",
	Args:  cobra.ExactArgs(2),
	RunE:  runOfferAddListing,
}

var offerRemoveListingCmd = &cobra.Command{
	Use:   "remove-listing <offer-id> <listing-id>",
	Short: "Remove a listing from an offer",
	Args:  cobra.ExactArgs(2),
	RunE:  runOfferRemoveListing,
}

var offerRespondCmd = &cobra.Command{
	Use:   "respond <offer-id> <listing-id>",
	Short: "Record the client's response for one listing on the offer",
	Args:  cobra.ExactArgs(2),
	RunE:  runOfferRespond,
}

func init() {
	offerCreateCmd.Flags().IntVar(&offerClientID, "client", 0, "client id (required)")
	offerCreateCmd.Flags().IntSliceVar(&offerListingIDs, "listing", nil, "listing id, repeatable (at least one required)")
	_ = offerCreateCmd.MarkFlagRequired("client")

	offerRespondCmd.Flags().BoolVar(&offerAccepted, "accepted", false, "whether the client accepted the listing")

	offerCmd.AddCommand(offerCreateCmd)
	offerCmd.AddCommand(offerGetCmd)
	offerCmd.AddCommand(offerListCmd)
	offerCmd.AddCommand(offerDeleteCmd)
	offerCmd.AddCommand(offerAddListingCmd)
	offerCmd.AddCommand(offerRemoveListingCmd)
	offerCmd.AddCommand(offerRespondCmd)
}

func runOfferCreate(cmd *cobra.Command, args []string) error {
	offer := &types.Offer{
		ClientID:   offerClientID,
		ListingIDs: offerListingIDs,
	}
	created, err := app.offers.CreateOffer(offer)
	if err != nil {
		return err
	}
	return printResult(created, func() {
		fmt.Printf("Created offer %d for client %d\n", created.ID, created.ClientID)
	})
}

func runOfferGet(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	offer, err := app.offers.GetByID(id)
	if err != nil {
		return err
	}
	return printResult(offer, func() { printOfferLine(offer) })
}

func runOfferList(cmd *cobra.Command, args []string) error {
	offers := app.offers.GetAll()
	return printResult(offers, func() {
		for _, o := range offers {
			printOfferLine(o)
		}
	})
}

func runOfferDelete(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	if err := app.offers.DeleteOffer(id); err != nil {
		return err
	}
	fmt.Printf("Deleted offer %d\n", id)
	return nil
}

func runOfferAddListing(cmd *cobra.Command, args []string) error {
	offerID, err := parseID(args[0])
	if err != nil {
		return err
	}
	listingID, err := parseID(args[1])
	if err != nil {
		return err
	}
	if err := app.offers.AddListingToOffer(offerID, listingID); err != nil {
		return err
	}
	fmt.Printf("Added listing %d to offer %d\n", listingID, offerID)
	return nil
}

func runOfferRemoveListing(cmd *cobra.Command, args []string) error {
	offerID, err := parseID(args[0])
	if err != nil {
		return err
	}
	listingID, err := parseID(args[1])
	if err != nil {
		return err
	}
	if err := app.offers.RemoveListingFromOffer(offerID, listingID); err != nil {
		return err
	}
	fmt.Printf("Removed listing %d from offer %d\n", listingID, offerID)
	return nil
}

func runOfferRespond(cmd *cobra.Command, args []string) error {
	offerID, err := parseID(args[0])
	if err != nil {
		return err
	}
	listingID, err := parseID(args[1])
	if err != nil {
		return err
	}
	if err := app.offers.RecordResponse(offerID, listingID, offerAccepted); err != nil {
		return err
	}
	fmt.Printf("Recorded response for listing %d on offer %d\n", listingID, offerID)
	return nil
}
