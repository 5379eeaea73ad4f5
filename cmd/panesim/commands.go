package main

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/phanxgames/panes"
	"github.com/phanxgames/panes/desktop"
)

type app struct {
	out, errOut io.Writer
	logger      *log.Logger
	verbose     bool
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}
	root := &cobra.Command{
		Use:          "panesim",
		Short:        "Run pane positioning scenarios",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.WarnLevel
			if a.verbose {
				level = log.DebugLevel
			}
			a.logger = newLogger(a.errOut, level)
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(a.runCommand())
	root.AddCommand(a.playCommand())
	root.AddCommand(a.validateCommand())
	root.AddCommand(a.easesCommand())
	return root
}

func (a *app) runCommand() *cobra.Command {
	var (
		maxFrames int
		debug     bool
	)
	cmd := &cobra.Command{
		Use:   "run SCRIPT",
		Short: "Run a scenario headless and print where every pane ended up",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := panes.LoadScript(args[0])
			if err != nil {
				return err
			}
			e := panes.NewEngine()
			e.SetLogger(a.logger)
			e.SetDebugMode(debug)
			r, err := panes.NewScriptRunner(e, s)
			if err != nil {
				return err
			}
			frames, err := r.Run(maxFrames)
			if err != nil {
				return err
			}
			if !r.Done() {
				return fmt.Errorf("%s: not finished after %d frames", args[0], frames)
			}
			a.logger.Debug("scenario finished", "script", args[0], "frames", frames)
			renderPanes(a.out, fmt.Sprintf("%s after %d frames", filepath.Base(args[0]), frames), r.Panes())
			return nil
		},
	}
	cmd.Flags().IntVar(&maxFrames, "max-frames", 6000, "stop after this many frames")
	cmd.Flags().BoolVar(&debug, "debug", false, "panic on misuse and log per-frame stats")
	return cmd
}

func (a *app) playCommand() *cobra.Command {
	var (
		width, height int
		showFPS       bool
	)
	cmd := &cobra.Command{
		Use:   "play [SCRIPT]",
		Short: "Open a window with the scenario's panes; drag to move, drag a corner to resize, R to reset",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := desktop.RunConfig{
				Title:   "panesim",
				Width:   width,
				Height:  height,
				ShowFPS: showFPS,
				Logger:  a.logger,
			}
			if len(args) == 1 {
				s, err := panes.LoadScript(args[0])
				if err != nil {
					return err
				}
				cfg.Script = s
				cfg.Title = "panesim - " + filepath.Base(args[0])
			}
			return desktop.Run(cfg)
		},
	}
	cmd.Flags().IntVar(&width, "width", 0, "window width (defaults to the script viewport)")
	cmd.Flags().IntVar(&height, "height", 0, "window height (defaults to the script viewport)")
	cmd.Flags().BoolVar(&showFPS, "fps", false, "show FPS and TPS")
	return cmd
}

func (a *app) validateCommand() *cobra.Command {
	var asConfig bool
	cmd := &cobra.Command{
		Use:   "validate FILE...",
		Short: "Check scenario scripts (or position configs with --config)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				if asConfig {
					if _, err := panes.LoadConfig(path); err != nil {
						return err
					}
				} else if _, err := panes.LoadScript(path); err != nil {
					return err
				}
				printOK(a.out, "%s", path)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asConfig, "config", false, "validate position configs instead of scripts")
	return cmd
}

func (a *app) easesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "eases",
		Short: "List the easing function names",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range panes.EaseNames() {
				if name == panes.DefaultEase {
					fmt.Fprintln(a.out, name+styleDim.Render(" (default)"))
					continue
				}
				fmt.Fprintln(a.out, name)
			}
		},
	}
}
