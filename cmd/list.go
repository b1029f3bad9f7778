package cmd

import (
	"github.com/spf13/cobra"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "list films or the wishlist",
	Long:  `list films or the wishlist`,
}

var outputJSON bool

func init() {
	listCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "print json instead of a table")
	rootCmd.AddCommand(listCmd)
}
