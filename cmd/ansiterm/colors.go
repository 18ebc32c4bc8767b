package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/ansiterm/terminal"
)

func newColorsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "colors",
		Short: "Show styled text on the alternate screen, then return to the main screen",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			hold := a.v.GetDuration("colors.hold")
			return terminal.Run(func(t *terminal.Terminal) error {
				return runColors(cmd.Context(), t, hold)
			}, a.termOptions()...)
		},
	}
	cmd.Flags().Duration("hold", 3*time.Second, "how long the alternate screen stays up")
	a.v.BindPFlag("colors.hold", cmd.Flags().Lookup("hold"))
	return cmd
}

// runColors switches to raw mode, draws on the alternate screen for hold and
// leaves a line on the main screen
func runColors(ctx context.Context, t *terminal.Terminal, hold time.Duration) error {
	if err := t.SetMode(terminal.Raw()); err != nil {
		return err
	}

	err := t.Print(
		terminal.AlternateScreenBuffer,
		terminal.HideCursor,
		terminal.Text("\n\n\n"),
		terminal.CursorPreviousLine(3),

		terminal.RGB{R: 255},
		terminal.Underline,
		terminal.Text("Hay sup!"),
		terminal.CursorNextLine(1),
		terminal.Reset,

		terminal.Magenta,
		terminal.Negative,
		terminal.Text("Does this work?\r\n"),
		terminal.Positive,
		terminal.CursorNextLine(1),
		terminal.Reset,
	)
	if err != nil {
		return err
	}

	select {
	case <-ctx.Done():
	case <-time.After(hold):
	}

	return t.Print(
		terminal.MainScreenBuffer,
		terminal.ShowCursor,
		terminal.Green,
		terminal.Text("Looks like it!"),
		terminal.Reset,
		terminal.Text("\r\n"),
	)
}
