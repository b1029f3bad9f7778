package cmd

import (
	"github.com/spf13/cobra"
)

// getCmd represents the get command
var getCmd = &cobra.Command{
	Use:   "get",
	Short: "get a single film",
	Long:  `get a single film`,
}

func init() {
	getCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "print json instead of text")
	rootCmd.AddCommand(getCmd)
}
