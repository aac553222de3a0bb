package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// statusCmd prints the cached session without touching the network.
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the cached session and active farm",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, store, err := bootstrap()
		if err != nil {
			return err
		}
		fmt.Println("Backend:", cfg.APIURL)
		if !store.Authenticated() {
			fmt.Println("Session: unauthenticated")
			return nil
		}
		user := store.User()
		fmt.Printf("Session: %s <%s> (%s)\n", user.Name, user.Email, user.Role)
		if farm := store.ActiveFarm(); farm != nil {
			fmt.Printf("Active farm: %s (id %d)\n", farm.Name, farm.ID)
		} else {
			fmt.Println("Active farm: none")
		}
		return nil
	},
}
