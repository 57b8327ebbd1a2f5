// Package cli implementa o schedulectl, que monta a grade localmente e fala
// com uma API de escalas em execução.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/vfg2006/shift-scheduler-api/infrastructure/integrator/scheduleapi/scheduleclient"
	"github.com/vfg2006/shift-scheduler-api/internal/config"
)

var (
	// Version é definida no build
	Version = "dev"
)

// App guarda o estado da linha de comando.
type App struct {
	client scheduleclient.Client
	config *config.Config
	root   *cobra.Command
}

// NewApp cria a aplicação. Com client nil o cliente REST é criado a partir da
// configuração depois da leitura das flags.
func NewApp(client scheduleclient.Client, cfg *config.Config) *App {
	a := &App{client: client, config: cfg}

	a.root = &cobra.Command{
		Use:           "schedulectl",
		Short:         "Ferramenta de linha de comando da API de escalas",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if a.client == nil {
				a.client = scheduleclient.NewClient(a.config)
			}
			return nil
		},
	}

	a.root.PersistentFlags().StringVar(&a.config.Client.BaseURL, "base-url", cfg.Client.BaseURL, "URL base da API")
	a.root.PersistentFlags().StringVar(&a.config.Client.Token, "token", cfg.Client.Token, "Token JWT usado nas requisições")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.slotsCmd())
	a.root.AddCommand(a.fillCmd())
	a.root.AddCommand(a.shiftsCmd())
	a.root.AddCommand(a.lockedCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Mostra a versão",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "schedulectl %s\n", Version)
		},
	}
}

// SetOutput redireciona a saída dos comandos.
func (a *App) SetOutput(w io.Writer) {
	a.root.SetOut(w)
	a.root.SetErr(w)
}

// SetArgs substitui os argumentos da linha de comando.
func (a *App) SetArgs(args []string) {
	a.root.SetArgs(args)
}

// Execute roda a aplicação.
func (a *App) Execute() error {
	return a.root.Execute()
}
