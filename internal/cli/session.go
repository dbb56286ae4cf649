package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Game session commands",
	}

	cmd.AddCommand(newSessionCreateCmd())
	cmd.AddCommand(newSessionGetCmd())
	cmd.AddCommand(newSessionStartCmd())

	return cmd
}

func newSessionCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Create a new game session and make it current",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Session

			if err := client.Post(cmd.Context(), "/api/v1/sessions", nil, &result); err != nil {
				return err
			}

			if err := cfg.SaveSession(result.Code); err != nil {
				return fmt.Errorf("failed to save session: %w", err)
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newSessionGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get [code]",
		Short: "Show a game session (default: current)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := sessionArg(args)
			if err != nil {
				return err
			}

			var result Session
			if err := client.Get(cmd.Context(), sessionPath(code), &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newSessionStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the current game; the roster is frozen afterwards",
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := cfg.RequireSession()
			if err != nil {
				return err
			}

			var result Session
			if err := client.Post(cmd.Context(), sessionPath(code, "start"), nil, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

// sessionArg prefers an explicit code argument over the configured session
func sessionArg(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	return cfg.RequireSession()
}
