package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func (a *App) shiftsCmd() *cobra.Command {
	var (
		companyID string
		date      string
	)

	cmd := &cobra.Command{
		Use:   "shifts",
		Short: "Lista os turnos da empresa",
		RunE: func(cmd *cobra.Command, _ []string) error {
			shifts, err := a.client.ListShifts(context.Background(), companyID, date)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tFUNCIONÁRIO\tDATA\tINÍCIO\tFIM\tHORAS")
			for _, s := range shifts {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%.2f\n", s.ID, s.EmployeeID, s.Date, s.StartTime, s.EndTime, s.Hours())
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&companyID, "company", "", "ID da empresa (obrigatório)")
	cmd.Flags().StringVar(&date, "date", "", "Filtra por dia (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("company")

	return cmd
}
