package cmd

import (
	"github.com/mustafatiftikci/crypto-tree/cli"
)

var versionCmd = cli.NewVersionCommand("cryptotree")

func init() {
	RootCmd.AddCommand(versionCmd)
}
