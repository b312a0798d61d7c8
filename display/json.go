// Package display renders command results for humans or machines.
package display

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// ShouldOutputJSON reports whether --json was set on the command or the root
func ShouldOutputJSON(cmd *cobra.Command) bool {
	if cmd == nil {
		return false
	}

	if flag := cmd.Flags().Lookup("json"); flag != nil && flag.Changed {
		jsonFlag, _ := cmd.Flags().GetBool("json")
		return jsonFlag
	}

	if flag := cmd.Root().PersistentFlags().Lookup("json"); flag != nil {
		globalFlag, _ := cmd.Root().PersistentFlags().GetBool("json")
		return globalFlag
	}
	return false
}

// MarshalJSON marshals v with two-space indentation
func MarshalJSON(v interface{}) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

// OutputJSON writes v to w as indented JSON followed by a newline
func OutputJSON(w io.Writer, v interface{}) error {
	data, err := MarshalJSON(v)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
