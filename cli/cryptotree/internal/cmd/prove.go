package cmd

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mustafatiftikci/crypto-tree/cryptotree"
)

// provenInclusion is the JSON shape emitted by "prove" and consumed
// by "verify": the proof plus the root digest it was generated under.
type provenInclusion struct {
	RootDigest string            `json:"rootDigest"`
	Proof      *cryptotree.Proof `json:"proof"`
}

var proveCmd = &cobra.Command{
	Use:   "prove <records-file> <id>",
	Short: "Emit an inclusion proof for the record with the given id.",
	Long: `Build an authenticated tree from the JSON records in the given
file and print an inclusion proof for the requested id, together
with the root digest the proof verifies against.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		tree, err := loadTree(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		proof := tree.ProveInclusion(args[1])
		if proof == nil {
			fmt.Fprintln(os.Stderr, "no record with id", args[1])
			os.Exit(1)
		}
		out, err := json.MarshalIndent(&provenInclusion{
			RootDigest: hex.EncodeToString(tree.RootDigest()),
			Proof:      proof,
		}, "", "  ")
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println(string(out))
	},
}

func init() {
	RootCmd.AddCommand(proveCmd)
}
