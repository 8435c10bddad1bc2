// Package cli wires command-line flags, the cobra root command and viper
// configuration together.
package cli
