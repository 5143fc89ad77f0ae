package main

import (
	"stylistapi/recommend"

	"github.com/spf13/cobra"
)

func newSuggestCmd() *cobra.Command {
	var bodyType, category string
	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Print style suggestions for a body type",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeJSON(cmd.OutOrStdout(), recommend.DefaultStyleGuide.Suggestions(bodyType, category))
		},
	}
	cmd.Flags().StringVar(&bodyType, "body-type", "", "Body type, unknown values use the default guide")
	cmd.Flags().StringVar(&category, "category", recommend.SuggestionAll, "top, bottom, outerwear, shoes or all")
	return cmd
}

func newCatalogCmd() *cobra.Command {
	var bodyType, category string
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Print catalog items recommended for a body type",
		RunE: func(cmd *cobra.Command, _ []string) error {
			items := recommend.RecommendedItems(bodyType, category)
			if items == nil {
				items = []recommend.ClothingItem{}
			}
			return writeJSON(cmd.OutOrStdout(), items)
		},
	}
	cmd.Flags().StringVar(&bodyType, "body-type", "", "Body type, unknown values use the default catalog")
	cmd.Flags().StringVar(&category, "category", "", "Catalog category, empty for a preview across all")
	return cmd
}
