package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/me/heptuple/pkg/heptuple"
)

func newSouratesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sourates [numero]",
		Short: "Browse the 114-chapter catalogue",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				numero, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid sourate number %q", args[0])
				}
				return showSourate(cmd, numero)
			}
			return listSourates(cmd)
		},
	}
}

func listSourates(cmd *cobra.Command) error {
	sourates, err := client.ListSourates(cmd.Context())
	if err != nil {
		return err
	}

	for _, s := range sourates {
		fmt.Fprintf(cmd.OutOrStdout(), "%3d  %-30s %-12s %4d versets\n",
			s.Numero, s.NomFrancais, s.TypeRevelation, s.NombreVersets)
	}
	return nil
}

func showSourate(cmd *cobra.Command, numero int) error {
	s, err := client.GetSourate(cmd.Context(), numero)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Sourate %d: %s (%s)\n", s.Numero, s.NomFrancais, s.NomArabe)
	fmt.Fprintf(out, "  Révélation: %s", s.TypeRevelation)
	if s.OrdreRevelation > 0 {
		fmt.Fprintf(out, " (ordre %d)", s.OrdreRevelation)
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  Versets:    %d\n", s.NombreVersets)
	if len(s.Themes) > 0 {
		fmt.Fprintf(out, "  Thèmes:     %s\n", strings.Join(s.Themes, ", "))
	}
	if s.Profil != nil {
		printProfile(cmd, *s.Profil)
	}
	return nil
}

func printProfile(cmd *cobra.Command, p heptuple.HeptupleProfile) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "  Profil heptuple:")
	for i, score := range p.ToArray() {
		fmt.Fprintf(out, "    %-13s %3d\n", heptuple.DimensionNames[i], score)
	}
	fmt.Fprintf(out, "  Dimension dominante: %s (%d)\n",
		heptuple.DimensionNames[p.DominantDimension()-1], p.DominantDimension())
}
