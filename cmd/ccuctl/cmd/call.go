// Copyright (C) 2024-2026, the ccukit authors. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var callCmd = &cobra.Command{
	Use:   "call <method> [arg...]",
	Short: "Call a CCU method by its local name",
	Long: `Calls a CCU method by its local name with positional arguments and
prints the raw result.

Arguments are coerced by shape: true/false become booleans, integer
and decimal literals become numbers, everything else stays a string.

Example:

  ccuctl -a 192.168.1.26 call interface_set_value LEQ1234567:1 STATE true`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCall,
}

func init() {
	rootCmd.AddCommand(callCmd)
}

func runCall(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	callArgs := make([]any, 0, len(args)-1)
	for _, arg := range args[1:] {
		callArgs = append(callArgs, coerceArg(arg))
	}

	result, err := client.Invoke(args[0], callArgs...)
	if err != nil {
		return err
	}
	fmt.Printf("%v\n", result)
	return nil
}

// coerceArg turns a shell word into the XML-RPC value it looks like.
func coerceArg(s string) any {
	switch s {
	case "true":
		return true
	case "false":
		return false
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
