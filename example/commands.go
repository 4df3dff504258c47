package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/next-trace/scg-narrate/clierror"
	narrate "github.com/next-trace/scg-narrate/error"
	"github.com/next-trace/scg-narrate/exitcode"
	"github.com/next-trace/scg-narrate/report"
)

// Execute runs the demo CLI. A failing command is reported with its full
// cause chain and the process exits with the code resolved from the error.
func Execute() {
	rootCmd := createRootCmd()

	if err := rootCmd.Execute(); err != nil {
		log.Debug().Err(err).Msg("command failed")
		report.ErrFull(err)
		os.Exit(exitcode.From(err))
	}
}

func createRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "narrate-demo",
		Short:         "Demonstrations of error narration and reporting",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.AddCommand(
		statusCmd(),
		configCmd(),
		lazyCmd(),
		multiHelpCmd(),
		reportCmd(),
	)

	return rootCmd
}

// statusCmd prints a Cargo-style status line:
//
//	narrate-demo status Created "new project `spacetime`" green
func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <title> <msg> <color>",
		Short: "Print a right-justified status line",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			attr, err := parseColor(args[2])
			if err != nil {
				return narrate.WrapErr(err, clierror.Usage())
			}

			report.Status(args[0], args[1], attr)

			return nil
		},
	}
}

// configCmd simulates a bad configuration file and exits with the CONFIG
// code (78), regardless of how deep the parse failure sits.
func configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Report a simulated configuration failure",
		RunE: func(cmd *cobra.Command, args []string) error {
			err := narrate.WrapErr(parseConfig(), clierror.Config())
			return narrate.AddHelp(err, "See https://docs.example.com/config for more info")
		},
	}
}

func parseConfig() error {
	// simulate a deserialization error deep in a config loader
	err := narrate.Errorf("missing key: 'port'")
	return err.Wrapf("bad config file `%s`", "/app/config.toml")
}

// lazyCmd wraps a file read with lazily-built context: none of the
// closures run when the file exists.
func lazyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lazy <path>",
		Short: "Load a file, narrating failures with lazy context",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			log.Debug().Str("path", path).Msg("loading data")

			data, err := loadData(path)
			if err != nil {
				return narrate.WrapWith(err, func() string {
					return fmt.Sprintf("unable to load data from file: `%s`", path)
				})
			}

			fmt.Println(data)

			return nil
		},
	}
}

func loadData(path string) (string, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return "", narrate.WrapErrWith(err, func() error {
			return clierror.InputFileNotFound(path)
		})
	}

	return strings.ToLower(string(contents)), nil
}

// multiHelpCmd stacks two help messages; the innermost appears first in
// the report.
func multiHelpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "multihelp",
		Short: "Report an error carrying stacked help messages",
		RunE: func(cmd *cobra.Command, args []string) error {
			err := narrate.Wrap(innerFn(), "outer error")
			return narrate.AddHelp(err, "outer help")
		},
	}
}

func innerFn() error {
	err := narrate.Errorf("inner error")
	err.AddHelp("inner help")

	return err
}

// reportCmd builds an ad-hoc chain from its arguments and prints the full
// report:
//
//	narrate-demo report "root cause" "middle context" "outer context"
func reportCmd() *cobra.Command {
	var helpMsgs []string

	cmd := &cobra.Command{
		Use:   "report <error> [context...]",
		Short: "Print a full error report for an ad-hoc chain",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := narrate.New(errors.New(args[0]))
			for _, context := range args[1:] {
				err = err.Wrap(errors.New(context))
			}

			for _, msg := range helpMsgs {
				err.AddHelp(msg)
			}

			report.ErrFull(err)

			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&helpMsgs, "help-msg", "H", nil, "help message to attach (repeatable)")

	return cmd
}

func parseColor(name string) (color.Attribute, error) {
	switch strings.ToLower(name) {
	case "red":
		return color.FgRed, nil
	case "green":
		return color.FgGreen, nil
	case "yellow":
		return color.FgYellow, nil
	case "blue":
		return color.FgBlue, nil
	case "magenta":
		return color.FgMagenta, nil
	case "cyan":
		return color.FgCyan, nil
	case "white":
		return color.FgWhite, nil
	}

	return 0, fmt.Errorf("not a valid color: %s", name)
}
