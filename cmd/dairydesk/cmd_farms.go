package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"dairydesk/internal/api"
)

var farmsMine bool

// farmsCmd lists farms from the shell, mirroring the farms screen of the
// interactive client.
var farmsCmd = &cobra.Command{
	Use:   "farms",
	Short: "List farms",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client, _, err := bootstrap()
		if err != nil {
			return err
		}

		var farms []api.Farm
		if farmsMine {
			farms, err = client.MyFarms(cmd.Context())
		} else {
			farms, err = client.ListFarms(cmd.Context())
		}
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tADDRESS\tPRICE/L\tSELLING\tAVAILABLE")
		for _, f := range farms {
			selling := "no"
			if f.IsSelling {
				selling = "yes"
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%.2f\t%s\t%.1f\n",
				f.ID, f.Name, f.Address, f.PricePerLiter, selling, f.AvailableMilk)
		}
		return w.Flush()
	},
}

func init() {
	farmsCmd.Flags().BoolVar(&farmsMine, "mine", false, "only farms owned by or assigned to me")
}
