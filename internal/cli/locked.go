package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) lockedCmd() *cobra.Command {
	var (
		companyID string
		week      string
	)

	cmd := &cobra.Command{
		Use:   "locked",
		Short: "Verifica se a semana está bloqueada",
		RunE: func(cmd *cobra.Command, _ []string) error {
			status, err := a.client.CheckWeekLock(context.Background(), companyID, week)
			if err != nil {
				return err
			}

			state := "desbloqueada"
			if status.IsLocked {
				state = "bloqueada"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Semana %s da empresa %s: %s\n", status.WeekStartDate, status.CompanyID, state)
			return nil
		},
	}

	cmd.Flags().StringVar(&companyID, "company", "", "ID da empresa (obrigatório)")
	cmd.Flags().StringVar(&week, "week", "", "Qualquer dia da semana (YYYY-MM-DD, obrigatório)")
	_ = cmd.MarkFlagRequired("company")
	_ = cmd.MarkFlagRequired("week")

	return cmd
}
