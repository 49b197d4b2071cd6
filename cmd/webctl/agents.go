package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/webctl-dev/webctl/internal/agents"
	"github.com/webctl-dev/webctl/internal/messages"
)

func newAgentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.AgentsUse,
		Short: messages.AgentsShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			all := agents.All()
			_, _ = fmt.Fprintf(out, messages.AgentsHeaderFmt, len(all))
			for _, target := range all {
				policy := messages.AgentsDefaultLabel
				if !target.Default {
					policy = messages.AgentsOnDemandLabel
				}
				local := target.LocalPath
				if local == "" {
					local = messages.AgentsNoPathLabel
				}
				global := target.GlobalPath
				if global == "" {
					global = messages.AgentsNoPathLabel
				}
				_, _ = fmt.Fprintf(out, messages.AgentsLineFmt, target.ID, policy, local, global)
			}
			return nil
		},
	}
}
