package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/reoring/infakt/internal/logger"
	"github.com/reoring/infakt/model"
)

func newInvoicesCmd(opts Options, flags *rootFlags) *cobra.Command {
	invoicesCmd := &cobra.Command{
		Use:   "invoices",
		Short: "Read invoices",
	}

	var fields string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List invoices",
		Long: `List invoices of the account.

--fields restricts the returned attributes, e.g. --fields id,number,gross_price.
Unknown field names are rejected before any request is sent.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.validateOutput(); err != nil {
				return err
			}
			c, err := newClient(cmd, opts, flags)
			if err != nil {
				return err
			}
			var params *model.InvoicesParams
			if fields != "" {
				params = &model.InvoicesParams{Fields: model.ParseFields(fields)}
			}

			log := logger.WithComponent("invoices")
			log.Debug().Str("environment", string(c.Environment())).Str("fields", fields).Msg("Listing invoices")

			res, err := c.Get().Invoices(cmd.Context(), params)
			if err != nil {
				return err
			}
			if flags.output == "table" {
				return writeInvoiceTable(cmd.OutOrStdout(), res)
			}
			return writeJSON(cmd.OutOrStdout(), res)
		},
	}
	listCmd.Flags().StringVar(&fields, "fields", "", "Comma-separated invoice fields to return")

	getCmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one invoice",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.validateOutput(); err != nil {
				return err
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || id <= 0 {
				return fmt.Errorf("invalid invoice id %q", args[0])
			}
			c, err := newClient(cmd, opts, flags)
			if err != nil {
				return err
			}
			inv, err := c.Get().Invoice(cmd.Context(), id)
			if err != nil {
				return err
			}
			if flags.output == "table" {
				return writeInvoiceDetail(cmd.OutOrStdout(), inv)
			}
			return writeJSON(cmd.OutOrStdout(), inv)
		},
	}

	invoicesCmd.AddCommand(listCmd, getCmd)
	return invoicesCmd
}
