// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"cogentcore.org/synaptic/config"
	"github.com/spf13/cobra"
)

func configCmd(fl *flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Create and show config files",
	}
	cmd.AddCommand(
		configInitCmd(),
		configShowCmd(fl),
	)
	return cmd
}

func configInitCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init <file>",
		Short: "Write a config file with default values",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fn := args[0]
			if _, err := os.Stat(fn); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", fn)
			}
			cfg := config.Default()
			if err := cfg.Save(fn); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", fn)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	return cmd
}

func configShowCmd(fl *flags) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective config, with defaults and clamping applied",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, fl, nil)
			if err != nil {
				return err
			}
			_, enc, err := config.Codecs("config." + format)
			if err != nil {
				return err
			}
			return config.Write(&cfg, cmd.OutOrStdout(), enc)
		},
	}
	cmd.Flags().StringVar(&format, "format", "toml", "output format (toml or yaml)")
	return cmd
}
