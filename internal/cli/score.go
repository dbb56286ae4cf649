package cli

import (
	"github.com/spf13/cobra"
)

func newScoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Scorecard commands",
	}

	cmd.AddCommand(newScoreSetCmd())
	cmd.AddCommand(newScoreGetCmd())

	return cmd
}

func newScoreSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <player> <category> <value>",
		Short: "Record a score; non-numeric input clears the cell",
		Long: `Record a score for a player in a category.

The value is parsed leniently: leading whitespace and a sign are allowed and
trailing text is ignored, so "25 pts" records 25. Input with no leading digits
clears the cell. Pass "" to clear explicitly. Negative values such as -5 are
taken as the value, so flags must come before the player name.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := cfg.RequireSession()
			if err != nil {
				return err
			}

			req := map[string]string{"value": args[2]}
			var result Score

			if err := client.Put(cmd.Context(), sessionPath(code, "players", args[0], "scores", args[1]), req, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}

	// Stop flag parsing at the first positional so "-5" reaches RunE as a value
	cmd.Flags().SetInterspersed(false)

	return cmd
}

func newScoreGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <player> <category>",
		Short: "Show a single scorecard cell",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := cfg.RequireSession()
			if err != nil {
				return err
			}

			var result Score
			if err := client.Get(cmd.Context(), sessionPath(code, "players", args[0], "scores", args[1]), &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newTotalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "total <player>",
		Short: "Show a player's total score",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := cfg.RequireSession()
			if err != nil {
				return err
			}

			var result Total
			if err := client.Get(cmd.Context(), sessionPath(code, "players", args[0], "total"), &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newStandingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "standings",
		Short: "Show players ranked by total",
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := cfg.RequireSession()
			if err != nil {
				return err
			}

			var result Standings
			if err := client.Get(cmd.Context(), sessionPath(code, "standings"), &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}
