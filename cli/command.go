// Package cli provides the shared cobra command builders for the
// crypto-tree command-line tools.
package cli

import (
	"github.com/spf13/cobra"
)

// cobraCommand is used to implement any type of cobra command
// for any of the crypto-tree command-line tools and executables.
type cobraCommand interface {
	Build() *cobra.Command
}
