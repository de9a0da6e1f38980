package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/me/heptuple/pkg/heptuple"
)

func newCompareCmd() *cobra.Command {
	var focus []int

	cmd := &cobra.Command{
		Use:   "compare <numero> <numero> [numero...]",
		Short: "Compare the heptuple profiles of several chapters",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]int, len(args))
			for i, arg := range args {
				id, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("invalid sourate number %q", arg)
				}
				ids[i] = id
			}

			result, err := client.CompareSourates(cmd.Context(), ids, heptuple.CompareOptions{
				DimensionsFocus: focus,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, s := range result.Sourates {
				fmt.Fprintf(out, "%3d  %s\n", s.Numero, s.NomFrancais)
				if s.Profil != nil {
					printProfile(cmd, *s.Profil)
				}
			}
			for key, value := range result.Statistics {
				fmt.Fprintf(out, "%s: %v\n", key, value)
			}
			return nil
		},
	}

	cmd.Flags().IntSliceVar(&focus, "dimension", nil, "Focus on specific dimensions (1-7, repeatable)")
	return cmd
}

func newFeedbackCmd() *cobra.Command {
	var fb heptuple.Feedback

	cmd := &cobra.Command{
		Use:   "feedback",
		Short: "Rate a previous analysis",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.SubmitFeedback(cmd.Context(), fb); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Feedback submitted")
			return nil
		},
	}

	cmd.Flags().IntVar(&fb.AnalyseID, "analysis", 0, "ID of the analysis being rated")
	cmd.Flags().IntVar(&fb.Rating, "rating", 0, "Rating from 1 to 5")
	cmd.Flags().StringVar(&fb.Commentaire, "comment", "", "Optional comment")
	cmd.Flags().StringVar(&fb.Suggestions, "suggestions", "", "Optional suggestions")
	cmd.MarkFlagRequired("analysis")
	cmd.MarkFlagRequired("rating")
	return cmd
}
