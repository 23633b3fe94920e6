package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/inventario-registro/internal/application/registry"
	"github.com/jhoicas/inventario-registro/internal/infrastructure/pdf"
	"github.com/jhoicas/inventario-registro/internal/interfaces/console"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Exporta el catálogo a PDF",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := bootstrap(cmd.Context(), cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		path, _ := cmd.Flags().GetString("out")
		if path == "" {
			path = a.Config.Report.Path
		}
		records := a.Records
		if low, _ := cmd.Flags().GetBool("low-stock"); low {
			records = registry.LowStock(records)
		}
		if err := console.WriteReport(cmd.Context(), pdf.NewCatalogReport(), a.Config.Report.Title, path, records); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s (%d products)\n", path, len(records))
		return nil
	},
}

func init() {
	reportCmd.Flags().StringP("out", "o", "", "ruta del PDF (REPORT_PATH)")
	reportCmd.Flags().Bool("low-stock", false, "solo productos en o bajo su nivel de reorden")
}
