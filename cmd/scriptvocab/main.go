package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/scriptvocab/internal/cli"
	"codeberg.org/snonux/scriptvocab/internal/processor"
	"codeberg.org/snonux/scriptvocab/internal/translation"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	// Handle --list-engines flag
	if flags.ListEngines {
		return translation.ListEngines(processor.EngineConfigFromFlags(flags))
	}

	// An input path is required for everything else
	if len(args) == 0 {
		return fmt.Errorf("please provide an input file or directory (or use --list-engines)")
	}

	if err := cli.Validate(flags); err != nil {
		return err
	}

	proc, err := processor.NewProcessor(flags)
	if err != nil {
		return fmt.Errorf("failed to create processor: %w", err)
	}

	if err := proc.Run(cmd.Context(), args[0]); err != nil {
		return err
	}

	fmt.Printf("\nDone!\n")
	return nil
}
