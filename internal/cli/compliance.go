package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	openapiagents "github.com/openapi-ai-agents/client-go"
	"github.com/openapi-ai-agents/client-go/internal/tui"
)

func newComplianceCmd(opts *rootOptions) *cobra.Command {
	var frameworks []string

	cmd := &cobra.Command{
		Use:   "compliance <config-file>",
		Short: "Validate a configuration against compliance frameworks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.newClient("")
			if err != nil {
				return err
			}

			config, err := openapiagents.LoadSpecification(args[0])
			if err != nil {
				return err
			}

			result, err := client.ValidateCompliance(cmd.Context(),
				openapiagents.Structured(config), frameworks...)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), tui.RenderCompliance(result))
			if !result.Valid {
				return fmt.Errorf("compliance validation failed with %d error(s)", result.TotalErrors)
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&frameworks, "framework", nil, "framework to check (repeatable, default all)")

	return cmd
}
