package main

import (
	"fmt"
	"strings"

	"shopassist/internal/model"

	"github.com/spf13/cobra"
)

var (
	searchItem      string
	searchColor     string
	searchBudget    int64
	searchDirection string
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search the catalog with explicit filters",
	RunE: func(cmd *cobra.Command, args []string) error {
		query := model.SearchQuery{}
		if searchItem != "" {
			query.Item = &searchItem
		}
		if searchColor != "" {
			query.Color = &searchColor
		}
		if cmd.Flags().Changed("budget") {
			direction := model.Direction(strings.ToLower(searchDirection))
			if direction != model.DirectionLess && direction != model.DirectionMore {
				return fmt.Errorf("invalid direction %q: must be less or more", searchDirection)
			}
			query.Budget = &searchBudget
			query.Direction = &direction
		}

		a, err := loadApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		_, reply := a.Assistant.Search(query)
		botColor.Fprintln(cmd.OutOrStdout(), reply)
		return nil
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare <product> vs <product>",
	Short: "Compare two products side by side",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := loadApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		s, err := a.Assistant.StartSession(ctx)
		if err != nil {
			return err
		}
		resp, err := a.Assistant.Compare(ctx, s.ID, strings.Join(args, " "))
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if c := resp.Comparison; c != nil {
			fmt.Fprintf(out, "%-10s | %-24s | %-24s\n", "", c.Left.Item, c.Right.Item)
			fmt.Fprintf(out, "%-10s | %-24s | %-24s\n", "Price", c.Left.Price, c.Right.Price)
			fmt.Fprintf(out, "%-10s | %-24s | %-24s\n", "Color", c.Left.Color, c.Right.Color)
			fmt.Fprintf(out, "%-10s | %-24s | %-24s\n", "Category", c.Left.Category, c.Right.Category)
		}
		botColor.Fprintln(out, resp.Message)
		return nil
	},
}

var fitCmd = &cobra.Command{
	Use:   "fit <question>",
	Short: "Get size guidance for jeans, T-shirts or shoes",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		botColor.Fprintln(cmd.OutOrStdout(), a.Fit.Advise(strings.Join(args, " ")))
		return nil
	},
}

func init() {
	searchCmd.Flags().StringVar(&searchItem, "item", "", "item name substring")
	searchCmd.Flags().StringVar(&searchColor, "color", "", "color")
	searchCmd.Flags().Int64Var(&searchBudget, "budget", 0, "budget in whole dollars")
	searchCmd.Flags().StringVar(&searchDirection, "direction", "less", "budget direction: less or more")
	rootCmd.AddCommand(searchCmd, compareCmd, fitCmd)
}
