// Command sliderctl inspects slider shortcodes offline: it shows the product
// query a shortcode resolves to, updates recently viewed cookies and prints
// shortcode text for the generator.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "sliderctl",
		Short:         "Inspect product slider shortcodes",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newQueryCmd(), newRecordCmd(), newGenerateCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
