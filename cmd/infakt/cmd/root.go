package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reoring/infakt"
	"github.com/reoring/infakt/internal/config"
	"github.com/reoring/infakt/internal/logger"
)

var version = "0.1.0"

// Options carries what the commands need from main.
type Options struct {
	Config *config.Config
	// Fetcher overrides the default HTTP fetcher.
	Fetcher infakt.Fetcher
}

type rootFlags struct {
	sandbox bool
	output  string
}

// NewRootCmd builds the command tree.
func NewRootCmd(opts Options) *cobra.Command {
	if opts.Config == nil {
		opts.Config = &config.Config{}
	}
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:   "infakt",
		Short: "Query the inFakt API and validate invoice payloads",
		Long: `infakt is a command-line client for the inFakt invoicing API v3.

Configuration is read from the environment or a .env file:
  INFAKT_API_KEY   API key sent as X-inFakt-ApiKey
  INFAKT_SANDBOX   use the sandbox environment (true/false)
  LOG_LEVEL, LOG_FORMAT, LOG_OUTPUT

Examples:
  # List invoices with selected fields
  infakt invoices list --fields id,number,gross_price --output table

  # Fetch a single invoice from the sandbox
  infakt invoices get 42 --sandbox

  # Print the JSON Schema of the create payload
  infakt schema invoice-create

  # Validate a payload before sending it
  infakt validate invoice.yaml --lang pl`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().BoolVar(&flags.sandbox, "sandbox", false, "Use the sandbox environment (env: INFAKT_SANDBOX)")
	root.PersistentFlags().StringVarP(&flags.output, "output", "o", "json", "Output format (json, table)")

	root.AddCommand(
		newInvoicesCmd(opts, flags),
		newSchemaCmd(flags),
		newValidateCmd(flags),
	)
	return root
}

// Execute runs the CLI.
func Execute(opts Options) error {
	err := NewRootCmd(opts).Execute()
	if err != nil {
		log := logger.WithComponent("cmd")
		log.Debug().Err(err).Msg("Command execution failed")
	}
	return err
}

func (f *rootFlags) validateOutput() error {
	switch f.output {
	case "json", "table":
		return nil
	}
	return fmt.Errorf("unsupported output format %q (json, table)", f.output)
}

// newClient builds an API client, wrapping the fetcher with request logging.
func newClient(cmd *cobra.Command, opts Options, flags *rootFlags) (*infakt.Client, error) {
	if err := opts.Config.RequireAPIKey(); err != nil {
		return nil, err
	}
	cc := opts.Config.ClientConfig()
	if cmd.Flags().Changed("sandbox") {
		cc.Sandbox = flags.sandbox
	}
	next := opts.Fetcher
	if next == nil {
		next = infakt.NewHTTPFetcher()
	}
	cc.Fetcher = infakt.LoggingFetcher(next, logger.WithComponent("http"))
	return infakt.New(cc)
}
