package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jhoicas/inventario-registro/internal/application/registry"
)

var searchCmd = &cobra.Command{
	Use:   "search <término>",
	Short: "Busca productos por nombre o categoría",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap(cmd.Context(), cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		results := registry.Search(a.Records, strings.Join(args, " "))
		out := cmd.OutOrStdout()
		if len(results) == 0 {
			fmt.Fprintln(out, "No products.")
			return nil
		}
		for _, r := range results {
			fmt.Fprintln(out, r.String())
		}
		return nil
	},
}
