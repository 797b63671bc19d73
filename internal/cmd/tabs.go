package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pulsenav/settings/internal/nav"
)

// TabsCmd returns the `pulse-settings tabs` command.
func TabsCmd() *cobra.Command {
	var agents bool
	cmd := &cobra.Command{
		Use:   "tabs",
		Short: "List settings tabs and their canonical paths",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			out := c.OutOrStdout()
			if agents {
				for _, agent := range nav.AllAgents() {
					fmt.Fprintf(out, "  %-4s  %-22s  %s\n", agent, agent.Label(), nav.AgentPath(agent))
				}
				return nil
			}

			var group nav.Group
			for _, tab := range nav.AllTabs() {
				if g := tab.Group(); g != group {
					if group != "" {
						fmt.Fprintln(out)
					}
					group = g
					fmt.Fprintln(out, g)
				}
				fmt.Fprintf(out, "  %-28s  %-16s  %s\n", tab, tab.Label(), nav.PathFor(tab))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&agents, "agents", false, "list proxmox agents instead of tabs")
	return cmd
}
