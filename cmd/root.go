// Package cmd provides the command line interface for the application.
package cmd

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"pirevision/cmd/list"
	"pirevision/internal/common"
	"pirevision/internal/cpuinfo"
	"pirevision/internal/revision"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"
)

var gLogFile *os.File
var gVersion = "0.1.0-dev" // overwritten by ldflags in Makefile

const (
	// LongAppName is the name of the application
	LongAppName = "Raspberry Pi Revision Decoder"
	// EnvCPUInfo overrides the default cpuinfo path
	EnvCPUInfo = "PIREVISION_CPUINFO"
	// stdinArg requests revision codes from stdin
	stdinArg = "-"
)

var examples = []string{
	fmt.Sprintf("  Decode this board's revision code:         $ %s", common.AppName),
	fmt.Sprintf("  Decode revision codes as JSON:             $ %s --json a02082 0x0002", common.AppName),
	fmt.Sprintf("  Decode revision codes from a file:         $ %s - < codes.txt", common.AppName),
	fmt.Sprintf("  List the translated old style codes:       $ %s list --filter \"memory_mb >= 512\"", common.AppName),
}

// rootCmd decodes the revision codes given as arguments
var rootCmd = &cobra.Command{
	Use:                fmt.Sprintf("%s [flags] [revision code...]", common.AppName),
	Short:              common.AppName,
	Long:               fmt.Sprintf(`%s (%s) decodes Raspberry Pi revision codes, given in hex with or without a 0x prefix. With no codes it decodes the revision reported in %s. Use "-" to read codes from stdin, one per line.`, LongAppName, common.AppName, cpuinfo.DefaultPath),
	Example:            strings.Join(examples, "\n"),
	Args:               cobra.ArbitraryArgs,
	PersistentPreRunE:  initializeApplication,
	PersistentPostRunE: terminateApplication,
	PreRunE:            validateFlags,
	RunE:               runCmd,
	Version:            gVersion,
	SilenceErrors:      true,
}

var (
	// logging
	flagDebug   bool
	flagSyslog  bool
	flagLogFile string
	// input
	flagCPUInfo   string
	flagKeepGoing bool
)

const (
	flagDebugName     = "debug"
	flagSyslogName    = "syslog"
	flagLogFileName   = "log-file"
	flagCPUInfoName   = "cpuinfo"
	flagKeepGoingName = "keep-going"
)

func init() {
	rootCmd.SetHelpCommand(&cobra.Command{}) // block the help command
	rootCmd.CompletionOptions.HiddenDefaultCmd = true
	rootCmd.AddGroup([]*cobra.Group{{ID: "primary", Title: "Commands:"}}...)
	rootCmd.AddCommand(list.Cmd)
	rootCmd.AddCommand(list.FieldsCmd)
	// Global (persistent) flags
	rootCmd.PersistentFlags().BoolVar(&flagDebug, flagDebugName, false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagSyslog, flagSyslogName, false, "write logs to syslog instead of stderr")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, flagLogFileName, "", "append logs to this file instead of stderr")
	rootCmd.MarkFlagsMutuallyExclusive(flagSyslogName, flagLogFileName)
	// decode flags
	common.AddOutputFlags(rootCmd)
	rootCmd.Flags().StringVar(&flagCPUInfo, flagCPUInfoName, "", fmt.Sprintf("read the revision code from this file when no codes are given (default %s, or $%s)", cpuinfo.DefaultPath, EnvCPUInfo))
	rootCmd.Flags().BoolVar(&flagKeepGoing, flagKeepGoingName, false, "continue with the remaining codes after a code fails to decode")
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.EnableCommandSorting = false
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		terminateErr := terminateApplication(rootCmd, os.Args)
		if terminateErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", terminateErr)
		}
		os.Exit(1)
	}
}

func initializeApplication(cmd *cobra.Command, args []string) error {
	// configure logging
	var logOpts slog.HandlerOptions
	if flagDebug {
		logOpts.Level = slog.LevelDebug
		logOpts.AddSource = true
	} else {
		logOpts.Level = slog.LevelWarn
	}
	if flagSyslog {
		handler, err := NewSyslogHandler(&logOpts)
		if err != nil {
			return fmt.Errorf("failed to create syslog handler: %w", err)
		}
		slog.SetDefault(slog.New(handler))
	} else if flagLogFile != "" {
		var err error
		gLogFile, err = os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644) // #nosec G302 G304
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(gLogFile, &logOpts)))
	} else {
		slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &logOpts)))
	}
	slog.Info("Starting up", slog.String("app", common.AppName), slog.String("version", gVersion), slog.Int("PID", os.Getpid()), slog.String("arguments", strings.Join(os.Args, " ")))
	cmd.Flags().Visit(func(f *pflag.Flag) {
		slog.Debug("flag set", slog.String("name", f.Name), slog.String("value", f.Value.String()))
	})
	return nil
}

// terminateApplication closes the log file, if one was opened
func terminateApplication(cmd *cobra.Command, args []string) error {
	slog.Info("Shutting down", slog.String("app", common.AppName), slog.String("version", gVersion), slog.Int("PID", os.Getpid()))
	if gLogFile != nil {
		err := gLogFile.Close()
		gLogFile = nil
		if err != nil {
			return fmt.Errorf("failed to close log file: %w", err)
		}
	}
	return nil
}

func validateFlags(cmd *cobra.Command, args []string) error {
	if err := common.ValidateOutputFlags(cmd); err != nil {
		return err
	}
	if flagCPUInfo != "" && len(args) > 0 {
		return fmt.Errorf("--%s cannot be used with revision code arguments", flagCPUInfoName)
	}
	return nil
}

func runCmd(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	inputs, err := gatherInputs(cmd, args)
	if err != nil {
		slog.Error("failed to gather revision codes", slog.String("error", err.Error()))
		return err
	}
	revisions, decodeErr := decodeInputs(cmd, inputs)
	if len(revisions) > 0 {
		if err := common.WriteReport(cmd, revisions); err != nil {
			slog.Error("failed to write report", slog.String("error", err.Error()))
			return err
		}
	}
	return decodeErr
}

// gatherInputs returns the revision code strings from the arguments, from
// stdin when an argument is "-", or from the cpuinfo file when there are no
// arguments.
func gatherInputs(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) == 0 {
		path := cpuInfoPath()
		code, err := cpuinfo.ReadRevision(path)
		if err != nil {
			return nil, err
		}
		return []string{code}, nil
	}
	var inputs []string
	for _, arg := range args {
		if arg != stdinArg {
			inputs = append(inputs, arg)
			continue
		}
		codes, err := readStdin(cmd.InOrStdin(), cmd.ErrOrStderr())
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, codes...)
	}
	return inputs, nil
}

func cpuInfoPath() string {
	if flagCPUInfo != "" {
		return flagCPUInfo
	}
	if path := os.Getenv(EnvCPUInfo); path != "" {
		return path
	}
	return cpuinfo.DefaultPath
}

// readStdin prompts when the user is typing the codes in
func readStdin(in io.Reader, prompt io.Writer) ([]string, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) { // #nosec G115
		fmt.Fprintln(prompt, "Enter revision codes, one per line, then Ctrl-D:")
	}
	return cpuinfo.ReadCodes(in)
}

// decodeInputs parses and decodes each input once. Without --keep-going it
// stops at the first failure and returns the revisions decoded so far along
// with the error.
func decodeInputs(cmd *cobra.Command, inputs []string) ([]revision.Revision, error) {
	var revisions []revision.Revision
	seen := mapset.NewThreadUnsafeSet[revision.Code]()
	failed := 0
	for _, input := range inputs {
		rev, err := decodeInput(input)
		if err != nil {
			slog.Error("failed to decode revision code", slog.String("input", input), slog.String("error", err.Error()))
			if !flagKeepGoing {
				return revisions, err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			failed++
			continue
		}
		if !seen.Add(rev.Original) {
			slog.Debug("skipping duplicate revision code", slog.String("code", rev.Original.String()))
			continue
		}
		revisions = append(revisions, rev)
	}
	if failed > 0 {
		return revisions, fmt.Errorf("failed to decode %d of %d revision codes", failed, len(inputs))
	}
	return revisions, nil
}

func decodeInput(input string) (revision.Revision, error) {
	code, err := revision.Parse(input)
	if err != nil {
		return revision.Revision{}, err
	}
	return revision.Decode(code)
}
