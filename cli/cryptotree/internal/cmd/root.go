// Package cmd implements the CLI commands for the crypto-tree tool.
package cmd

import (
	"github.com/mustafatiftikci/crypto-tree/cli"
)

// RootCmd represents the base "cryptotree" command when called without
// any subcommands.
var RootCmd = cli.NewRootCommand("cryptotree",
	"Authenticated self-balancing search tree in Go",
	`cryptotree maintains an authenticated AVL tree over JSON records
and produces a cryptographic root digest together with compact
inclusion proofs that can be checked against the digest alone.`)
