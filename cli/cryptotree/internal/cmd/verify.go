package cmd

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mustafatiftikci/crypto-tree/cryptotree"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <record-file> <proof-file>",
	Short: "Verify an inclusion proof produced by \"prove\".",
	Long: `Check the record in the given file against a proof emitted by the
"prove" command. Verification needs only the proof file's root
digest, not the tree the proof was generated from.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		rec, err := loadRecord(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		buf, err := os.ReadFile(args[1])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		var proven provenInclusion
		if err := json.Unmarshal(buf, &proven); err != nil {
			fmt.Fprintln(os.Stderr, args[1]+":", err)
			os.Exit(1)
		}
		rootDigest, err := hex.DecodeString(proven.RootDigest)
		if err != nil {
			fmt.Fprintln(os.Stderr, args[1]+":", err)
			os.Exit(1)
		}
		if !cryptotree.VerifyInclusion(rec, proven.Proof, rootDigest) {
			fmt.Println("invalid")
			os.Exit(1)
		}
		fmt.Println("valid")
	},
}

func init() {
	RootCmd.AddCommand(verifyCmd)
}
