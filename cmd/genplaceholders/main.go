package main

import (
	"os"

	"github.com/spf13/cobra"

	"chosenoffset.com/avatarpal/internal/config"
	"chosenoffset.com/avatarpal/internal/logging"
	"chosenoffset.com/avatarpal/internal/placeholders"
)

func main() {
	logger, _, _ := logging.New(logging.Options{})

	var (
		out   string
		force bool
	)

	rootCmd := &cobra.Command{
		Use:   "genplaceholders",
		Short: "Generate placeholder artwork for the avatar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			written, err := placeholders.GenerateAvatar(out, force)
			if err != nil {
				return err
			}
			if !written {
				logger.Info().Str("path", out).Msg("Avatar already exists, use --force to replace it")
				return nil
			}
			logger.Info().Str("path", out).Int("size", placeholders.AvatarSize).Msg("Generated placeholder avatar")
			return nil
		},
		SilenceUsage: true,
	}
	rootCmd.Flags().StringVarP(&out, "out", "o", config.AvatarImage, "where to write the avatar PNG")
	rootCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")

	if err := rootCmd.Execute(); err != nil {
		logger.Error().Err(err).Msg("Placeholder generation failed")
		os.Exit(1)
	}
}
