package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newImportCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE...",
		Short: "Load records from CSV files into the record store",
		Long: `Each file needs a header row naming its columns. state, date and confirmed
are required; district, recovered and tested are optional. A file with any
invalid row is rejected as a whole.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.openStore(cmd)
			if err != nil {
				return err
			}
			defer c.closeStore(client)

			for _, path := range args {
				n, err := client.ImportFromFile(cmd.Context(), path)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "imported %d records from %s\n", n, path)
			}

			total, err := client.RecordCount(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "record store now holds %d records\n", total)
			return nil
		},
	}
}
