package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/me/heptuple/pkg/heptuple"
)

func newSearchCmd() *cobra.Command {
	var (
		corpus  string
		limit   int
		filters []string
	)

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the reference corpora",
		Long: "Run a federated search across the scripture, sayings, and jurisprudence corpora,\n" +
			"or a single-corpus search with --corpus.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := args[0]

			opts := heptuple.SearchOptions{Limit: limit}
			if len(filters) > 0 {
				parsed, err := parseFilters(filters)
				if err != nil {
					return err
				}
				opts.Filters = parsed
			}

			if corpus != "" {
				result, err := client.SearchCorpus(cmd.Context(), heptuple.Corpus(corpus), query, opts)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d résultat(s) dans %s\n", result.Total, corpus)
				printHits(cmd, result.Results)
				return nil
			}

			result, err := client.SearchUniversal(cmd.Context(), query, opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d résultat(s)\n", result.TotalResults)
			for _, group := range []struct {
				name string
				hits []map[string]any
			}{
				{"coran", result.Coran},
				{"hadiths", result.Hadiths},
				{"fiqh", result.Fiqh},
			} {
				if len(group.hits) == 0 {
					continue
				}
				fmt.Fprintf(out, "-- %s (%d)\n", group.name, len(group.hits))
				printHits(cmd, group.hits)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&corpus, "corpus", "", "Restrict to one corpus: coran, hadiths, or fiqh")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum result count (default 20)")
	cmd.Flags().StringArrayVar(&filters, "filter", nil, "Search filter as key=value (repeatable)")
	return cmd
}

func parseFilters(pairs []string) (map[string]any, error) {
	filters := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid filter %q, want key=value", pair)
		}
		filters[key] = value
	}
	return filters, nil
}

// printHits renders backend-defined search hits, picking out the text
// fields the corpora have in common.
func printHits(cmd *cobra.Command, hits []map[string]any) {
	out := cmd.OutOrStdout()
	for _, hit := range hits {
		text := firstString(hit, "traduction_francaise", "texte_francais", "texte", "question")
		source := firstString(hit, "reference", "recueil", "source", "rite")
		switch {
		case text != "" && source != "":
			fmt.Fprintf(out, "  [%s] %s\n", source, truncate(text, 120))
		case text != "":
			fmt.Fprintf(out, "  %s\n", truncate(text, 120))
		default:
			fmt.Fprintf(out, "  %v\n", hit)
		}
	}
}

func firstString(hit map[string]any, keys ...string) string {
	for _, key := range keys {
		if s, ok := hit[key].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "…"
}
