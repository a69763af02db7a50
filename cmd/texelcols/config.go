// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/framegrace/texelcols/config"
)

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the configuration file and its table settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := config.Path()
			if err != nil {
				return err
			}
			ts := config.System().Table()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "file: %s\n", path)
			fmt.Fprintf(out, "maxout=%t nowrap=%t noencoding=%t ascii=%t\n", ts.MaxOut, ts.NoWrap, ts.NoEncoding, ts.ASCII)
			fmt.Fprintf(out, "noheadings=%t box=%t separator=%q width=%d\n", ts.NoHeadings, ts.Box, ts.Separator, ts.Width)
			return config.Err()
		},
	}
}
