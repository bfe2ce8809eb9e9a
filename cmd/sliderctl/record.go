package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/example/products-slider/internal/recentlyviewed"
)

func newRecordCmd() *cobra.Command {
	var cookie string

	cmd := &cobra.Command{
		Use:   "record <product-id>",
		Short: "Add a product view to a recently viewed cookie and print the new value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil || id <= 0 {
				return fmt.Errorf("invalid product id %q", args[0])
			}

			ids := recentlyviewed.RecordView(recentlyviewed.ReadList(cookie), id)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), recentlyviewed.EncodeList(ids))
			return err
		},
	}

	cmd.Flags().StringVar(&cookie, "cookie", "", "current cookie value")
	return cmd
}
