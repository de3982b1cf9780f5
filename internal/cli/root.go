package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	openapiagents "github.com/openapi-ai-agents/client-go"
	"github.com/openapi-ai-agents/client-go/internal/tui"
)

// EnvAPIKey is the environment variable holding the API key.
const EnvAPIKey = "OPENAPI_AI_AGENTS_KEY"

type rootOptions struct {
	apiKey  string
	baseURL string
	timeout time.Duration
	retries int
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "agents-validate <spec-file> [api-key]",
		Short: "Validate OpenAPI specifications against the AI Agents Standard",
		Long: "Validate an OpenAPI specification against the AI Agents Standard and " +
			"estimate its token consumption and cost via the OpenAPI AI Agents API.",
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, opts, args)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.apiKey, "api-key", "", "API key (defaults to the "+EnvAPIKey+" environment variable)")
	cmd.PersistentFlags().StringVar(&opts.baseURL, "base-url", "", "override the API base URL")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 0, "per-request timeout")
	cmd.PersistentFlags().IntVar(&opts.retries, "retries", -1, "max retries for transient failures")

	cmd.AddCommand(newHealthCmd(opts))
	cmd.AddCommand(newFrameworksCmd(opts))
	cmd.AddCommand(newProtocolsCmd(opts))
	cmd.AddCommand(newComplianceCmd(opts))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

// Execute runs the CLI.
func Execute() error {
	// A .env file is optional; ignore its absence.
	_ = godotenv.Load()
	return newRootCmd().Execute()
}

// resolveAPIKey picks the API key from a positional argument, the --api-key
// flag, or the environment, in that order.
func (o *rootOptions) resolveAPIKey(positional string) (string, error) {
	if positional != "" {
		return positional, nil
	}
	if o.apiKey != "" {
		return o.apiKey, nil
	}
	if key := os.Getenv(EnvAPIKey); key != "" {
		return key, nil
	}
	return "", fmt.Errorf("API key required: set %s or pass it as an argument", EnvAPIKey)
}

// newClient builds an SDK client from the resolved options.
func (o *rootOptions) newClient(positionalKey string) (*openapiagents.Client, error) {
	key, err := o.resolveAPIKey(positionalKey)
	if err != nil {
		return nil, err
	}

	var clientOpts []openapiagents.Option
	if o.baseURL != "" {
		clientOpts = append(clientOpts, openapiagents.WithBaseURL(o.baseURL))
	}
	if o.timeout > 0 {
		clientOpts = append(clientOpts, openapiagents.WithTimeout(o.timeout))
	}
	if o.retries >= 0 {
		clientOpts = append(clientOpts, openapiagents.WithRetries(o.retries))
	}

	return openapiagents.New(key, clientOpts...)
}

func runValidate(cmd *cobra.Command, opts *rootOptions, args []string) error {
	specFile := args[0]
	positionalKey := ""
	if len(args) > 1 {
		positionalKey = args[1]
	}

	client, err := opts.newClient(positionalKey)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Loading specification from %s\n", specFile)

	spec, err := openapiagents.LoadSpecification(specFile)
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	fmt.Fprintln(out, "Validating specification...")
	validation, err := client.ValidateOpenAPI(ctx, openapiagents.Structured(spec))
	if err != nil {
		return err
	}

	fmt.Fprintln(out, tui.RenderValidation(validation))
	if !validation.Valid {
		return fmt.Errorf("validation failed with %d error(s)", len(validation.Errors))
	}

	fmt.Fprintln(out, "Estimating token costs...")
	estimation, err := client.EstimateTokens(ctx, openapiagents.Structured(spec))
	if err != nil {
		return err
	}

	fmt.Fprintln(out, tui.RenderEstimation(estimation))
	return nil
}
