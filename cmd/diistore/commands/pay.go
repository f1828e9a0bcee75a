package commands

import (
	"fmt"

	"diistore/internal/dashboard"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(payCmd)
}

var payCmd = &cobra.Command{
	Use:   "pay",
	Short: "Prints the payment instructions.",
	Run: func(cmd *cobra.Command, args []string) {
		view := dashboard.BuildPaymentView(env.config.Payment)
		fmt.Println(view.Instructions)
		if env.config.Payment.QRFile != "" {
			fmt.Printf("QRIS: %s\n", env.config.Payment.QRFile)
		} else {
			fmt.Printf("QRIS: %s (%s)\n", view.QRUrl, view.QRDownloadName)
		}
		fmt.Println(view.Confirmation)
		if view.ContactUrl != "" {
			fmt.Printf("%s: %s\n", view.ContactLabel, view.ContactUrl)
		}
	},
}
