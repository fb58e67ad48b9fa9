package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/iddl/internal/role"
)

func newRolesCmd(rootFlags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "roles [domain]",
		Short: "List registered roles",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := rootFlags.app.Engine.Roles()
			domains := reg.Domains()
			if len(args) == 1 {
				domains = []role.Domain{role.Domain(args[0])}
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "DOMAIN\tROLE\tKIND\tTAG\tDESCRIPTION")
			found := 0
			for _, domain := range domains {
				for _, name := range reg.Roles(domain) {
					cfg, _ := reg.Get(domain, name)
					tag := cfg.Tag
					if cfg.IsComplex() {
						tag = cfg.Renderer
					}
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", domain, name, cfg.Kind, tag, cfg.Description)
					found++
				}
			}
			if found == 0 && len(args) == 1 {
				return newCommandError("list roles", fmt.Sprintf("domain %q", args[0]), fmt.Errorf("no roles registered"), "Run `iddl roles` to list every domain.")
			}
			return tw.Flush()
		},
	}
}
