// Command hudctl inspects and exercises a skillhud installation.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"skillhud/internal/buildinfo"
	"skillhud/internal/config"
	"skillhud/internal/logx"
)

type cli struct {
	configPath string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:          "hudctl",
		Short:        "Operate the skill progress HUD",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", os.Getenv("SKILLHUD_CONFIG"), "YAML or JSON config file")

	root.AddCommand(
		c.newLedgerCmd(),
		c.newPreviewCmd(),
		c.newConfigCmd(),
		newVersionCmd(),
	)
	return root
}

// load parses the configuration without watching it.
func (c *cli) load(path string) (*config.Config, error) {
	cfg, err := config.NewManager(path).Parse()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func (c *cli) logger(cmd *cobra.Command, cfg *config.Config) logx.Logger {
	return logx.NewWriter(cmd.ErrOrStderr(), cfg.Log.Level).With(logx.String("cmd", cmd.Name()))
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "hudctl %s\n", buildinfo.String())
		},
	}
}
