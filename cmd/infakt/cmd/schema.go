package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/reoring/infakt/model"
	js "github.com/reoring/infakt/schema/jsonschema"
)

func schemaNames() []string {
	names := make([]string, 0, len(model.Schemas()))
	for name := range model.Schemas() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func newSchemaCmd(_ *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:       "schema <name>",
		Short:     "Print the JSON Schema of a payload",
		Long:      "Print the JSON Schema of a payload. Names: " + strings.Join(schemaNames(), ", "),
		Args:      cobra.ExactArgs(1),
		ValidArgs: schemaNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, ok := model.Schemas()[args[0]]
			if !ok {
				return fmt.Errorf("unknown schema %q (%s)", args[0], strings.Join(schemaNames(), ", "))
			}
			doc, err := s.JSONSchema()
			if err != nil {
				return err
			}
			doc.Schema = js.Draft
			doc.Title = args[0]
			return writeJSON(cmd.OutOrStdout(), doc)
		},
	}
}
