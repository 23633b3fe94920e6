package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jhoicas/inventario-registro/internal/app"
	"github.com/jhoicas/inventario-registro/internal/infrastructure/pdf"
	"github.com/jhoicas/inventario-registro/internal/interfaces/console"
	"github.com/jhoicas/inventario-registro/pkg/config"
	"github.com/jhoicas/inventario-registro/pkg/logger"
)

var (
	version = "dev"
	v       = viper.New()
)

var rootCmd = &cobra.Command{
	Use:          "registro",
	Short:        "Mantenimiento del registro de productos",
	Long:         `Consola para buscar, eliminar y editar productos del inventario.`,
	Version:      version,
	SilenceUsage: true,
	RunE:         runInteractive,
}

func init() {
	rootCmd.PersistentFlags().StringP("catalog", "f", "", "archivo JSON del catálogo (CATALOG_PATH)")
	rootCmd.PersistentFlags().String("source", "", "origen del catálogo: file | postgres (CATALOG_SOURCE)")
	rootCmd.PersistentFlags().String("log-level", "", "nivel de log: trace, debug, info, warn, error (LOG_LEVEL)")
	rootCmd.Flags().Bool("no-autosave", false, "no guardar tras cada cambio")

	// Los flags se enlazan con las mismas claves que las variables de entorno.
	_ = v.BindPFlag("CATALOG_PATH", rootCmd.PersistentFlags().Lookup("catalog"))
	_ = v.BindPFlag("CATALOG_SOURCE", rootCmd.PersistentFlags().Lookup("source"))
	_ = v.BindPFlag("LOG_LEVEL", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.AddCommand(searchCmd, reportCmd)
}

// bootstrap carga configuración, logger y registro. El llamador debe cerrar App.
// --no-autosave se aplica antes de abrir el registro para que la escritura por campo
// siga la misma política que el guardado tras cada cambio.
func bootstrap(ctx context.Context, cmd *cobra.Command) (*app.App, error) {
	cfg, err := config.LoadFrom(v)
	if err != nil {
		return nil, fmt.Errorf("cargar configuración: %w", err)
	}
	if off, _ := cmd.Flags().GetBool("no-autosave"); off {
		cfg.Catalog.AutoSave = false
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})
	log.Debug().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	return app.Open(ctx, cfg, log)
}

func runInteractive(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := bootstrap(ctx, cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	out := cmd.OutOrStdout()
	menu := console.NewMenu(
		console.NewPrompter(cmd.InOrStdin(), out),
		out,
		a.Repo,
		pdf.NewCatalogReport(),
		console.MenuConfig{
			AutoSave:    a.Config.Catalog.AutoSave,
			ReportPath:  a.Config.Report.Path,
			ReportTitle: a.Config.Report.Title,
		},
		a.Log.WithComponent("console"),
	)
	if err := menu.Run(ctx, &a.Records); err != nil {
		return err
	}
	a.Log.Info().Msg("aplicación detenida")
	return nil
}
