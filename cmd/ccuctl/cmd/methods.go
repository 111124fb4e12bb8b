// Copyright (C) 2024-2026, the ccukit authors. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var methodsCmd = &cobra.Command{
	Use:   "methods",
	Short: "List the methods the CCU offers",
	Long: `Connects to the CCU, fetches its method catalog and prints every
available method under its local name.`,
	RunE: runMethods,
}

func init() {
	rootCmd.AddCommand(methodsCmd)
}

func runMethods(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	return client.PrintMethods(os.Stdout)
}
