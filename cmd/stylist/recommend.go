package main

import (
	"stylistapi/recommend"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type recommendFlags struct {
	wardrobe string
	profile  string
	occasion string
	weather  string
	style    string
	seed     uint64
}

func newRecommendCmd() *cobra.Command {
	var flags recommendFlags
	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Generate outfits for an occasion and weather",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRecommend(cmd, flags)
		},
	}
	cmd.Flags().StringVarP(&flags.wardrobe, "wardrobe", "w", "", "Path to a JSON array of clothing items (required)")
	cmd.Flags().StringVarP(&flags.profile, "profile", "p", "", "Path to a JSON user profile")
	cmd.Flags().StringVar(&flags.occasion, "occasion", "casual", "Occasion, e.g. casual, business casual, formal")
	cmd.Flags().StringVar(&flags.weather, "weather", "warm", "Weather: hot, warm, cool, cold, rainy")
	cmd.Flags().StringVar(&flags.style, "style", "", "Only use items of this style")
	cmd.Flags().Uint64Var(&flags.seed, "seed", 0, "Seed for reproducible output, 0 picks a random one")
	_ = cmd.MarkFlagRequired("wardrobe")
	return cmd
}

func runRecommend(cmd *cobra.Command, flags recommendFlags) error {
	var wardrobe []recommend.ClothingItem
	if err := readJSONFile(flags.wardrobe, &wardrobe); err != nil {
		return err
	}
	var user recommend.UserProfile
	if flags.profile != "" {
		if err := readJSONFile(flags.profile, &user); err != nil {
			return err
		}
	}

	opts := recommend.Options{}
	if flags.seed != 0 {
		opts.Random = recommend.NewRandom(flags.seed)
	}
	outfits := recommend.New(opts).Generate(user, wardrobe, recommend.Request{
		Occasion: flags.occasion,
		Weather:  flags.weather,
		Style:    flags.style,
	})
	log.Debug().Int("items", len(wardrobe)).Int("outfits", len(outfits)).Msg("outfits generated")
	return writeJSON(cmd.OutOrStdout(), outfits)
}
