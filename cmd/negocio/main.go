// Comando negocio: gestión de documentos comerciales, pagos y cartera desde
// la terminal, sobre un snapshot JSON local.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tu-usuario/negocio-pro/internal/domain/entity"
	"github.com/tu-usuario/negocio-pro/internal/infrastructure/jsonstore"
	"github.com/tu-usuario/negocio-pro/pkg/config"
	"github.com/tu-usuario/negocio-pro/pkg/logger"
)

var (
	cfg *config.Config
	log *logger.Logger
)

var rootCmd = &cobra.Command{
	Use:           "negocio",
	Short:         "Documentos comerciales, pagos y cartera para pequeños negocios",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		log = logger.New(logger.Config{
			Env:   cfg.App.Env,
			Level: "info",
		})
		return nil
	},
}

func main() {
	rootCmd.AddCommand(renderCmd, cuentasCmd, pagosCmd)
	if err := rootCmd.Execute(); err != nil {
		if log != nil {
			log.Error().Err(err).Msg("comando fallido")
		}
		os.Exit(1)
	}
}

// openStore construye el store sobre la ruta configurada.
func openStore() *jsonstore.Store {
	return jsonstore.NewStore(cfg.Storage.DataFile)
}

// activeProfile devuelve el perfil del snapshot si está poblado; si no, arma
// uno desde la configuración.
func activeProfile(snap *jsonstore.Snapshot) entity.BusinessProfile {
	if snap.Profile.Name != "" {
		return snap.Profile
	}
	return entity.BusinessProfile{
		Name:     cfg.Business.Name,
		Type:     cfg.Business.Type,
		Phone:    cfg.Business.Phone,
		Location: cfg.Business.Location,
		Email:    cfg.Business.Email,
	}
}
