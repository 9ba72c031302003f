package main

import (
	"github.com/spf13/cobra"

	"covidstat.mindtree.org/internal/app"
	"covidstat.mindtree.org/internal/menu"
)

func newMenuCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Start the interactive menu (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runMenu(cmd)
		},
	}
}

func (c *cli) runMenu(cmd *cobra.Command) error {
	client, err := c.openStore(cmd)
	if err != nil {
		return err
	}
	defer c.closeStore(client)

	application, err := app.New(cmd.Context(), c.config, c.logger, client)
	if err != nil {
		return err
	}

	session := menu.NewSession(application, cmd.InOrStdin(), cmd.OutOrStdout())
	return session.Run(cmd.Context())
}
