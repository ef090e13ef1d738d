package cmd

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootDigestCmd = &cobra.Command{
	Use:   "root <records-file>",
	Short: "Build a tree from the records and print its root digest.",
	Long: `Build an authenticated tree from the JSON records in the given
file and print the tree's size and hex-encoded root digest.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		tree, err := loadTree(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println("size:", tree.Size())
		fmt.Println("root:", hex.EncodeToString(tree.RootDigest()))
	},
}

func init() {
	RootCmd.AddCommand(rootDigestCmd)
}
