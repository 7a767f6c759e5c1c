package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"skillhud/internal/config"
)

func (c *cli) newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Work with configuration files",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "check [path]",
		Short: "Validate a config file and print the effective settings",
		Args:  cobra.MaximumNArgs(1),
		RunE:  c.runConfigCheck,
	})
	return cmd
}

func (c *cli) runConfigCheck(cmd *cobra.Command, args []string) error {
	path := c.configPath
	if len(args) == 1 {
		path = args[0]
	}
	cfg, err := c.load(path)
	if err != nil {
		return err
	}
	for _, w := range cfg.Warnings() {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", w)
	}

	b, err := config.EncodeYAML(cfg)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprint(out, string(b))
	if path == "" {
		path = "(defaults)"
	}
	fmt.Fprintf(out, "%s: ok\n", path)
	return nil
}
