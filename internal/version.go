// Package internal provides metadata shared by the crypto-tree
// executables.
package internal

// Version is the current version of the crypto-tree tools.
const Version = "0.1.0"
