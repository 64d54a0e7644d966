// Proposal subcommands for the realty CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var proposalCmd = &cobra.Command{
	Use:   "proposal",
	Short: "Manage the listings proposed to a client",
}

var proposalAddCmd = &cobra.Command{
	Use:   "add <client-id> <listing-id>",
	Short: "Propose a listing to a client",
	Long: `Add links a listing onto the client's proposal list. A client may
hold at most 5 proposed listings, and at that limit adding fails even for
a listing already on the list. Under the limit, proposing the same listing
twice is a no-op.`,
	Args: cobra.ExactArgs(2),
	RunE: runProposalAdd,
}

var proposalRemoveCmd = &cobra.Command{
	Use:   "remove <client-id> <listing-id>",
	Short: "Withdraw a proposed listing from a client",
	Args:  cobra.ExactArgs(2),
	RunE:  runProposalRemove,
}

var proposalListCmd = &cobra.Command{
	Use:   "list <client-id>",
	Short: "Show the listings currently proposed to a client",
	Args:  cobra.ExactArgs(1),
	RunE:  runProposalList,
}

func init() {
	proposalCmd.AddCommand(proposalAddCmd)
	proposalCmd.AddCommand(proposalRemoveCmd)
	proposalCmd.AddCommand(proposalListCmd)
}

func runProposalAdd(cmd *cobra.Command, args []string) error {
	clientID, err := parseID(args[0])
	if err != nil {
		return err
	}
	listingID, err := parseID(args[1])
	if err != nil {
		return err
	}
	if err := app.proposals.AddToProposal(clientID, listingID); err != nil {
		return err
	}
	fmt.Printf("Proposed listing %d to client %d\n", listingID, clientID)
	return nil
}

func runProposalRemove(cmd *cobra.Command, args []string) error {
	clientID, err := parseID(args[0])
	if err != nil {
		return err
	}
	listingID, err := parseID(args[1])
	if err != nil {
		return err
	}
	if err := app.proposals.RemoveFromProposal(clientID, listingID); err != nil {
		return err
	}
	fmt.Printf("Removed listing %d from client %d\n", listingID, clientID)
	return nil
}

func runProposalList(cmd *cobra.Command, args []string) error {
	clientID, err := parseID(args[0])
	if err != nil {
		return err
	}
	listings, err := app.proposals.GetClientProposals(clientID)
	if err != nil {
		return err
	}
	return printResult(listings, func() {
		for _, l := range listings {
			printListingLine(l)
		}
	})
}
