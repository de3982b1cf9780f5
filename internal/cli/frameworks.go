package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

func newFrameworksCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "frameworks",
		Short: "List available compliance frameworks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.newClient("")
			if err != nil {
				return err
			}

			frameworks, err := client.ListFrameworks(cmd.Context())
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(frameworks)
		},
	}
}

func newProtocolsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "protocols",
		Short: "List supported protocol bridges",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.newClient("")
			if err != nil {
				return err
			}

			protocols, err := client.ListProtocols(cmd.Context())
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(protocols)
		},
	}
}
