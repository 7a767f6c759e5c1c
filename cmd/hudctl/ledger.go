package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"skillhud/internal/ledger"
	"skillhud/internal/skills"
)

func (c *cli) newLedgerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Inspect the max-level announcement ledger",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List the last announcement day per skill",
			Args:  cobra.NoArgs,
			RunE:  c.runLedgerList,
		},
		&cobra.Command{
			Use:   "reset <skill>",
			Short: "Forget the announcement of a skill so it shows again today",
			Args:  cobra.ExactArgs(1),
			RunE:  c.runLedgerReset,
		},
	)
	return cmd
}

func (c *cli) openLedger(cmd *cobra.Command) (ledger.Ledger, error) {
	cfg, err := c.load(c.configPath)
	if err != nil {
		return nil, err
	}
	return ledger.Open(cfg.LedgerOptions(), c.logger(cmd, cfg))
}

func (c *cli) runLedgerList(cmd *cobra.Command, _ []string) error {
	l, err := c.openLedger(cmd)
	if err != nil {
		return err
	}
	defer l.Close()

	entries, err := l.Entries(cmd.Context())
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SKILL\tNAME\tDAY\tUPDATED")
	for _, e := range entries {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\n", e.Skill, skills.Name(e.Skill), e.Day, e.UpdatedAt.Format(time.RFC3339))
	}
	return tw.Flush()
}

func (c *cli) runLedgerReset(cmd *cobra.Command, args []string) error {
	id, ok := skills.Parse(args[0])
	if !ok {
		return fmt.Errorf("unknown skill %q", args[0])
	}
	l, err := c.openLedger(cmd)
	if err != nil {
		return err
	}
	defer l.Close()

	if err := l.Reset(cmd.Context(), id); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "reset %s\n", skills.Name(id))
	return nil
}
