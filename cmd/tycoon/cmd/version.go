package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  `Display the current version of the tycoon CLI.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tycoon version %s\n", version)
		fmt.Println("A single-player merchant trading simulation")
		fmt.Println("https://github.com/rustyeddy/tycoon")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
