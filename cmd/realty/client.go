// Client subcommands for the realty CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vkotliar/realty/pkg/types"
)

var (
	clientFirstName    string
	clientLastName     string
	clientBankAccount  string
	clientContactInfo  string
	clientDesiredType  string
	clientDesiredPrice int64
	clientSortKey      string
	clientSearchType   string
)

var clientCmd = &cobra.Command{
	Use:   "client",
	Short: "Manage clients",
}

var clientAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Register a new client",
	Example: `  realty client add --first-name John --last-name Doe --bank-account 123456 --contact john@example.com
  realty client add --first-name Jane --last-name Smith --bank-account 456 --contact jane@example.com --desired-type two_room_apartment --desired-price 200000`,
	RunE: runClientAdd,
}

var clientGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a client by id",
	Args:  cobra.ExactArgs(1),
	RunE:  runClientGet,
}

var clientListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all clients",
	RunE:  runClientList,
}

var clientUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a client's fields",
	Args:  cobra.ExactArgs(1),
	RunE:  runClientUpdate,
}

var clientDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a client",
	Args:  cobra.ExactArgs(1),
	RunE:  runClientDelete,
}

var clientSearchCmd = &cobra.Command{
	Use:   "search [keyword]",
	Short: "Search clients by name, bank account, or contact info",
	Long: `Search matches the keyword case-insensitively against first name,
last name, bank account, and contact info. With no keyword all clients are
listed. With --last-name or --desired-type set, an advanced search with
those filters runs instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runClientSearch,
}

var clientSortCmd = &cobra.Command{
	Use:   "sort",
	Short: "List clients sorted by first name, last name, or bank account",
	RunE:  runClientSort,
}

func init() {
	clientAddCmd.Flags().StringVar(&clientFirstName, "first-name", "", "first name (required)")
	clientAddCmd.Flags().StringVar(&clientLastName, "last-name", "", "last name (required)")
	clientAddCmd.Flags().StringVar(&clientBankAccount, "bank-account", "", "bank account, digits only (required)")
	clientAddCmd.Flags().StringVar(&clientContactInfo, "contact", "", "contact info (required)")
	clientAddCmd.Flags().StringVar(&clientDesiredType, "desired-type", "", "desired listing type")
	clientAddCmd.Flags().Int64Var(&clientDesiredPrice, "desired-price", 0, "desired price")

	clientUpdateCmd.Flags().StringVar(&clientFirstName, "first-name", "", "first name")
	clientUpdateCmd.Flags().StringVar(&clientLastName, "last-name", "", "last name")
	clientUpdateCmd.Flags().StringVar(&clientBankAccount, "bank-account", "", "bank account, digits only")
	clientUpdateCmd.Flags().StringVar(&clientContactInfo, "contact", "", "contact info")
	clientUpdateCmd.Flags().StringVar(&clientDesiredType, "desired-type", "", "desired listing type")
	clientUpdateCmd.Flags().Int64Var(&clientDesiredPrice, "desired-price", 0, "desired price")

	clientSearchCmd.Flags().StringVar(&clientLastName, "last-name", "", "last-name filter for advanced search")
	clientSearchCmd.Flags().StringVar(&clientSearchType, "desired-type", "", "desired-type filter for advanced search")

	clientSortCmd.Flags().StringVar(&clientSortKey, "by", "last-name", "sort key: first-name, last-name, bank-account")

	clientCmd.AddCommand(clientAddCmd)
	clientCmd.AddCommand(clientGetCmd)
	clientCmd.AddCommand(clientListCmd)
	clientCmd.AddCommand(clientUpdateCmd)
	clientCmd.AddCommand(clientDeleteCmd)
	clientCmd.AddCommand(clientSearchCmd)
	clientCmd.AddCommand(clientSortCmd)
}

func runClientAdd(cmd *cobra.Command, args []string) error {
	desired, err := parseTypeFlag(clientDesiredType)
	if err != nil {
		return err
	}
	client := &types.Client{
		FirstName:    clientFirstName,
		LastName:     clientLastName,
		BankAccount:  clientBankAccount,
		ContactInfo:  clientContactInfo,
		DesiredType:  desired,
		DesiredPrice: clientDesiredPrice,
	}
	added, err := app.clients.AddClient(client)
	if err != nil {
		return err
	}
	return printResult(added, func() {
		fmt.Printf("Created client %d: %s\n", added.ID, added.FullName())
	})
}

func runClientGet(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	client, err := app.clients.GetByID(id)
	if err != nil {
		return err
	}
	return printResult(client, func() { printClientLine(client) })
}

func runClientList(cmd *cobra.Command, args []string) error {
	clients := app.clients.GetAll()
	return printResult(clients, func() {
		for _, c := range clients {
			printClientLine(c)
		}
	})
}

func runClientUpdate(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	client, err := app.clients.GetByID(id)
	if err != nil {
		return err
	}
	// Work on a copy so a rejected update leaves the loaded record alone.
	updated := *client
	if cmd.Flags().Changed("first-name") {
		updated.FirstName = clientFirstName
	}
	if cmd.Flags().Changed("last-name") {
		updated.LastName = clientLastName
	}
	if cmd.Flags().Changed("bank-account") {
		updated.BankAccount = clientBankAccount
	}
	if cmd.Flags().Changed("contact") {
		updated.ContactInfo = clientContactInfo
	}
	if cmd.Flags().Changed("desired-type") {
		desired, err := parseTypeFlag(clientDesiredType)
		if err != nil {
			return err
		}
		updated.DesiredType = desired
	}
	if cmd.Flags().Changed("desired-price") {
		updated.DesiredPrice = clientDesiredPrice
	}
	if err := app.clients.UpdateClient(&updated); err != nil {
		return err
	}
	return printResult(&updated, func() {
		fmt.Printf("Updated client %d\n", updated.ID)
	})
}

func runClientDelete(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	if err := app.clients.DeleteClient(id); err != nil {
		return err
	}
	fmt.Printf("Deleted client %d\n", id)
	return nil
}

func runClientSearch(cmd *cobra.Command, args []string) error {
	var clients []*types.Client
	if cmd.Flags().Changed("last-name") || cmd.Flags().Changed("desired-type") {
		desired, err := parseTypeFlag(clientSearchType)
		if err != nil {
			return err
		}
		clients = app.clients.AdvancedSearch(clientLastName, desired)
	} else {
		keyword := ""
		if len(args) > 0 {
			keyword = args[0]
		}
		clients = app.clients.Search(keyword)
	}
	return printResult(clients, func() {
		for _, c := range clients {
			printClientLine(c)
		}
	})
}

func runClientSort(cmd *cobra.Command, args []string) error {
	var clients []*types.Client
	switch clientSortKey {
	case "first-name":
		clients = app.clients.SortByFirstName()
	case "last-name":
		clients = app.clients.SortByLastName()
	case "bank-account":
		clients = app.clients.SortByBankAccountFirstDigit()
	default:
		return fmt.Errorf("unknown sort key %q", clientSortKey)
	}
	return printResult(clients, func() {
		for _, c := range clients {
			printClientLine(c)
		}
	})
}
