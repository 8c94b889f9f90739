package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"spellcheck-app/internal/config"
	"spellcheck-app/internal/presentation/di"
)

// newRootCmd 補正結果を stdout に書き出すルートコマンドを作成
func newRootCmd(stdout io.Writer, configPath string) *cobra.Command {
	return &cobra.Command{
		Use:   "spellcheck <text>",
		Short: "Check spelling of a text and print the corrections",
		Long: `spellcheck sends the given text to the configured spell-check provider
and prints two lines to stdout:

  1. the corrected text
  2. the corrections as a JSON object ({"original": "corrected", ...})

The provider is read from $SPELLCHECK_CONFIG or ~/.spellcheck-app/config.yaml.`,
		Args: cobra.ExactArgs(1),
		// テキストが "-" で始まってもフラグとして解釈しない
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			container, err := di.NewContainer(cfg)
			if err != nil {
				return err
			}
			defer func() {
				if err := container.Close(); err != nil {
					_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "failed to close resources: %v\n", err)
				}
			}()

			corrected, corrections, err := container.Corrector().Correct(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			encoded, err := formatCorrections(corrections)
			if err != nil {
				return fmt.Errorf("failed to serialize corrections: %w", err)
			}

			// 両方そろってから書き出す。途中で失敗した場合 stdout には何も出さない
			_, err = fmt.Fprintf(stdout, "%s\n%s\n", corrected, encoded)
			return err
		},
	}
}
