package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/vfg2006/shift-scheduler-api/internal/domain"
	"github.com/vfg2006/shift-scheduler-api/internal/grid"
	"github.com/vfg2006/shift-scheduler-api/internal/usecases/shifting"
	"github.com/vfg2006/shift-scheduler-api/pkg/utils"
)

func (a *App) fillCmd() *cobra.Command {
	var (
		employeeID  string
		date        string
		labels      []string
		startHour   int
		endHour     int
		concurrency int
		dryRun      bool
	)

	cmd := &cobra.Command{
		Use:   "fill",
		Short: "Consolida horários selecionados e cria os turnos",
		Long: `Agrupa os horários informados em turnos contíguos e cria cada um
deles na API. Falhas individuais não desfazem os turnos já criados.

Exemplo:
  schedulectl fill --employee=abc123 --date=2024-01-15 --labels=09:00,09:15,09:30,14:00`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			day, err := grid.ParseDate(date)
			if err != nil {
				return errors.Wrap(err, "data inválida")
			}
			date = day.Format(grid.DateLayout)

			slots := grid.NewSlots(startHour, endHour)
			ranges := grid.Consolidate(slots, labels)
			if len(ranges) == 0 {
				return errors.New("nenhum horário válido selecionado")
			}

			out := cmd.OutOrStdout()
			for _, r := range ranges {
				fmt.Fprintf(out, "%s %s-%s\n", grid.ShiftDate(date, r.DayOffset), r.Start, r.End)
			}
			if dryRun {
				return nil
			}

			result := shifting.PersistRanges(context.Background(), a.client, employeeID, date, ranges, concurrency)
			fmt.Fprintln(out, utils.PrettyJson(result))

			return bulkError(result)
		},
	}

	cmd.Flags().StringVar(&employeeID, "employee", "", "ID do funcionário (obrigatório)")
	cmd.Flags().StringVar(&date, "date", "", "Data do turno (YYYY-MM-DD, obrigatória)")
	cmd.Flags().StringSliceVar(&labels, "labels", nil, "Horários selecionados, separados por vírgula")
	cmd.Flags().IntVar(&startHour, "start-hour", a.config.Grid.StartHour, "Hora inicial da grade")
	cmd.Flags().IntVar(&endHour, "end-hour", a.config.Grid.EndHour, "Hora final da grade (até 47)")
	cmd.Flags().IntVar(&concurrency, "concurrency", a.config.Shifts.BulkCreateMaxConcurrency, "Criações simultâneas")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Apenas mostra os turnos consolidados")

	_ = cmd.MarkFlagRequired("employee")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("labels")

	return cmd
}

func bulkError(result *domain.BulkResult) error {
	if result.Errors == 0 {
		return nil
	}

	failed := make([]string, 0, result.Errors)
	for _, outcome := range result.Outcomes {
		if outcome.Status == domain.ShiftStatusFailed {
			failed = append(failed, outcome.StartTime+"-"+outcome.EndTime)
		}
	}
	return fmt.Errorf("%d de %d turnos falharam: %s", result.Errors, result.Total, strings.Join(failed, ", "))
}
