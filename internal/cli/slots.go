package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vfg2006/shift-scheduler-api/internal/grid"
)

func (a *App) slotsCmd() *cobra.Command {
	var (
		startHour int
		endHour   int
	)

	cmd := &cobra.Command{
		Use:   "slots",
		Short: "Lista os horários da grade",
		Long: `Lista os rótulos de 15 minutos da grade. Horas fora do domínio
voltam ao intervalo padrão.

Exemplo:
  schedulectl slots --start-hour=8 --end-hour=18`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			slots := grid.NewSlots(startHour, endHour)
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(slots.Labels(), " "))
			return nil
		},
	}

	cmd.Flags().IntVar(&startHour, "start-hour", a.config.Grid.StartHour, "Hora inicial da grade")
	cmd.Flags().IntVar(&endHour, "end-hour", a.config.Grid.EndHour, "Hora final da grade (até 47)")

	return cmd
}
