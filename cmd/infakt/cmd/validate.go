package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/reoring/infakt/model"
	"github.com/reoring/infakt/schema"
	"github.com/reoring/infakt/schema/i18n"
)

// errInvalidPayload is returned after the issues have been printed.
var errInvalidPayload = errors.New("payload is invalid")

func newValidateCmd(flags *rootFlags) *cobra.Command {
	var (
		schemaName string
		lang       string
	)
	validateCmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate a JSON or YAML payload",
		Long: `Validate a JSON or YAML payload against one of the inFakt schemas.

Files ending in .yaml or .yml are read as YAML, everything else as JSON.
Issues are printed with their JSON Pointer, code, and message.

Examples:
  infakt validate invoice.json
  infakt validate line.yaml --schema service --lang pl`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.validateOutput(); err != nil {
				return err
			}
			s, ok := model.Schemas()[schemaName]
			if !ok {
				return fmt.Errorf("unknown schema %q (%s)", schemaName, strings.Join(schemaNames(), ", "))
			}
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read file: %w", err)
			}
			i18n.SetLanguage(lang)

			src := schema.JSONBytes(data)
			switch strings.ToLower(filepath.Ext(args[0])) {
			case ".yaml", ".yml":
				src = schema.YAMLBytes(data)
			}

			_, err = schema.ParseFrom(cmd.Context(), s, src)
			if err == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: valid %s\n", args[0], schemaName)
				return nil
			}
			iss, ok := schema.AsIssues(err)
			if !ok {
				return err
			}
			if flags.output == "json" {
				if werr := writeJSON(cmd.OutOrStdout(), iss); werr != nil {
					return werr
				}
			} else if werr := writeIssues(cmd.OutOrStdout(), iss); werr != nil {
				return werr
			}
			return fmt.Errorf("%s: %w (%d issue(s))", args[0], errInvalidPayload, len(iss))
		},
	}
	validateCmd.Flags().StringVar(&schemaName, "schema", "invoice-create", "Schema to validate against")
	validateCmd.Flags().StringVar(&lang, "lang", "en", "Message language ("+strings.Join(i18n.Languages(), ", ")+")")
	return validateCmd
}
