package main

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"skillhud/app"
	"skillhud/hal"
	"skillhud/hud"
	"skillhud/internal/config"
	"skillhud/internal/logx"
	"skillhud/internal/overlay"
	"skillhud/internal/skills"
)

type scriptedGain struct {
	at     time.Duration
	skill  hud.SkillID
	amount int
}

// previewScript covers coalescing, a max-level update, a restart after the
// coalescing window and a hidden skill.
var previewScript = []scriptedGain{
	{0, skills.Farming, 30},
	{200 * time.Millisecond, skills.Farming, 15},
	{400 * time.Millisecond, skills.Mining, 15000},
	{500 * time.Millisecond, skills.Luck, 50},
	{600 * time.Millisecond, skills.Combat, 1400},
	{900 * time.Millisecond, skills.Farming, 10},
}

type previewOptions struct {
	out    string
	at     time.Duration
	width  int
	height int
}

func (c *cli) newPreviewCmd() *cobra.Command {
	opts := previewOptions{}
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render one frame of a scripted scenario to PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runPreview(cmd, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.out, "out", "o", "frame.png", "output PNG path")
	cmd.Flags().DurationVar(&opts.at, "at", 1500*time.Millisecond, "scenario time of the frame")
	cmd.Flags().IntVar(&opts.width, "width", hal.DefaultWidth, "frame width")
	cmd.Flags().IntVar(&opts.height, "height", hal.DefaultHeight, "frame height")
	return cmd
}

func (c *cli) runPreview(cmd *cobra.Command, opts previewOptions) error {
	if opts.width <= 0 || opts.height <= 0 {
		return fmt.Errorf("invalid frame size %dx%d", opts.width, opts.height)
	}
	if opts.at < 0 {
		return fmt.Errorf("--at must not be negative")
	}
	cfg, err := c.load(c.configPath)
	if err != nil {
		return err
	}
	log := c.logger(cmd, cfg)

	img, entries := renderPreview(cmd.Context(), cfg, opts.at, opts.width, opts.height, log)

	f, err := os.Create(opts.out)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", opts.out, err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SLOT\tSKILL\tTEXT\tOPACITY")
	for _, e := range entries {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%.2f\n", e.Slot, e.Name, e.Text, e.Opacity)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%dx%d at %s)\n", opts.out, opts.width, opts.height, opts.at)
	return nil
}

// renderPreview replays previewScript up to at and draws the resulting frame.
func renderPreview(ctx context.Context, cfg *config.Config, at time.Duration, w, h int, log logx.Logger) (*image.RGBA, []hud.Entry) {
	if ctx == nil {
		ctx = context.Background()
	}
	start := time.Unix(0, 0).UTC()
	store := hud.NewStore(hud.Options{})
	inbox := hud.NewInbox(0)
	tr := skills.NewTracker(inbox, nil, log)

	for _, g := range previewScript {
		if g.at > at {
			break
		}
		tr.GainExperience(ctx, g.skill, g.amount, 1)
		inbox.Drain(store, start.Add(g.at))
	}
	entries := store.Snapshot(start.Add(at))

	fb := hal.NewFramebuffer(w, h)
	fb.ClearRGB(0, 0, 0)
	overlay.New(app.Style(cfg)).Draw(fb, entries)
	return hal.ToRGBA(fb), entries
}
