// Copyright (C) 2024-2026, the ccukit authors. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags.
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the ccuctl version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("ccuctl %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
