package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/me/heptuple/pkg/heptuple"
)

func newAnalyzeCmd() *cobra.Command {
	var (
		lang         string
		details      bool
		noConfidence bool
		enriched     bool
	)

	cmd := &cobra.Command{
		Use:   "analyze [text]",
		Short: "Score a text on the seven heptuple dimensions",
		Long:  "Submit text for heptuple dimension scoring. With '-' or no argument the text is read from stdin.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(cmd, args)
			if err != nil {
				return err
			}

			opts := heptuple.AnalyzeOptions{
				Language:       lang,
				OmitConfidence: noConfidence,
				IncludeDetails: details,
			}

			if enriched {
				result, err := client.AnalyzeEnriched(cmd.Context(), text, opts)
				if err != nil {
					return err
				}
				printAnalysis(cmd, result.Analyse)
				fmt.Fprintf(cmd.OutOrStdout(), "Enrichissement: %.2f (%d hadiths, %d exégèses)\n",
					result.ScoreEnrichissement, len(result.Hadiths), len(result.Exegeses))
				return nil
			}

			result, err := client.Analyze(cmd.Context(), text, opts)
			if err != nil {
				return err
			}
			printAnalysis(cmd, *result)
			return nil
		},
	}

	cmd.Flags().StringVar(&lang, "lang", "", "Text language: ar, fr, en, or auto (default)")
	cmd.Flags().BoolVar(&details, "details", false, "Include the detailed analysis breakdown")
	cmd.Flags().BoolVar(&noConfidence, "no-confidence", false, "Omit per-dimension confidence scores")
	cmd.Flags().BoolVar(&enriched, "enriched", false, "Also fetch related reference material")
	return cmd
}

func readText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		return args[0], nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", fmt.Errorf("no text to analyze")
	}
	return text, nil
}

func printAnalysis(cmd *cobra.Command, a heptuple.Analysis) {
	out := cmd.OutOrStdout()
	scores := a.Profil.ToArray()
	for i, name := range heptuple.DimensionNames {
		fmt.Fprintf(out, "%-13s %3d", name, scores[i])
		if i < len(a.ConfidenceScores) {
			fmt.Fprintf(out, "  (confiance %.2f)", a.ConfidenceScores[i])
		}
		fmt.Fprintln(out)
	}
	if a.DimensionDominante >= 1 && a.DimensionDominante <= 7 {
		fmt.Fprintf(out, "Dimension dominante: %s (%d), intensité %d\n",
			heptuple.DimensionNames[a.DimensionDominante-1], a.DimensionDominante, a.IntensityMax)
	}
	fmt.Fprintf(out, "Traité en %d ms (modèle %s)\n", a.ProcessingTimeMS, a.Version)
}
