// Executable crypto-tree command-line tool. It builds an
// authenticated tree from a file of JSON records and exposes the
// tree's root digest, inclusion proofs, and proof verification.
package main

import (
	"github.com/mustafatiftikci/crypto-tree/cli"
	"github.com/mustafatiftikci/crypto-tree/cli/cryptotree/internal/cmd"
)

func main() {
	cli.Execute(cmd.RootCmd)
}
