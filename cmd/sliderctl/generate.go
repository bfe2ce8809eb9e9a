package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/products-slider/internal/shortcode"
)

func newGenerateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate <tag> [key=value...]",
		Short: "Print shortcode text for a tag and its options",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tag := args[0]
			if !shortcode.IsKnownTag(tag) {
				return fmt.Errorf("unknown tag %q, expected one of %s", tag, strings.Join(shortcode.Tags, ", "))
			}

			attrs := make(map[string]string, len(args)-1)
			for _, pair := range args[1:] {
				key, value, ok := strings.Cut(pair, "=")
				if !ok || strings.TrimSpace(key) == "" {
					return fmt.Errorf("expected key=value, got %q", pair)
				}
				attrs[strings.ToLower(strings.TrimSpace(key))] = value
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), shortcode.Format(tag, attrs))
			return err
		},
	}
}
