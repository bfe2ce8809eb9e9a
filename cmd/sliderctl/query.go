package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/example/products-slider/internal/query"
	"github.com/example/products-slider/internal/recentlyviewed"
	"github.com/example/products-slider/internal/shortcode"
)

type queryOutput struct {
	Shortcode *shortcode.Shortcode `json:"shortcode" yaml:"shortcode"`
	Query     *query.Descriptor    `json:"query" yaml:"query"`
}

func newQueryCmd() *cobra.Command {
	var (
		siteRTL        bool
		recentlyViewed string
		output         string
	)

	cmd := &cobra.Command{
		Use:   "query '<shortcode>'",
		Short: "Show the typed attributes and product query of a shortcode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tag, attrs, err := shortcode.ParseText(args[0])
			if err != nil {
				return err
			}

			sc := shortcode.Parse(tag, attrs, siteRTL)
			var ids []int
			if recentlyViewed != "" {
				ids = recentlyviewed.ReadList(recentlyViewed)
			}

			return writeOutput(cmd.OutOrStdout(), output, queryOutput{
				Shortcode: sc,
				Query:     sc.Query(ids),
			})
		},
	}

	cmd.Flags().BoolVar(&siteRTL, "site-rtl", false, "treat the site as right-to-left")
	cmd.Flags().StringVar(&recentlyViewed, "recently-viewed", "", "recently viewed cookie value")
	cmd.Flags().StringVarP(&output, "output", "o", "yaml", "output format: yaml or json")
	return cmd
}

func writeOutput(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
