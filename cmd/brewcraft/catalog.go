package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/brewcraft/internal/conversation"
)

var (
	searchEffects bool
	searchLimit   int
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the ingredient and effect catalogs",
}

var catalogSearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "List catalog entries whose name contains the query",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ingredients, effects, errs := loadCatalogs(cmd.Context())
		idx := ingredients
		if searchEffects {
			idx = effects
		} else {
			for _, err := range errs {
				fmt.Fprintf(os.Stderr, "warning: %v\n", err)
			}
		}

		query := strings.Join(args, " ")
		results := idx.Query(query)
		if len(results) == 0 {
			fmt.Println(conversation.LineNoResults(query))
			return nil
		}
		fmt.Println(conversation.LineResults(results, searchLimit))
		return nil
	},
}

func init() {
	catalogSearchCmd.Flags().BoolVar(&searchEffects, "effects", false, "search potion effects instead of ingredients")
	catalogSearchCmd.Flags().IntVar(&searchLimit, "limit", 50, "maximum number of entries to print")
	catalogCmd.AddCommand(catalogSearchCmd)
	rootCmd.AddCommand(catalogCmd)
}
