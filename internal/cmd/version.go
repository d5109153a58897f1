package cmd

import (
	"fmt"

	goversion "github.com/hashicorp/go-version"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of scalc",
	Run: func(cmd *cobra.Command, args []string) {
		v := goversion.Must(goversion.NewVersion(version))
		fmt.Fprintf(cmd.OutOrStdout(), "scalc version %s\n", v)
	},
}
