// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package main implements the berlin-poi command line tool.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/wneessen/berlin-poi/internal/config"
	"github.com/wneessen/berlin-poi/internal/i18n"
	"github.com/wneessen/berlin-poi/internal/logger"
	"github.com/wneessen/berlin-poi/internal/service"
)

const prompt = "Enter an address in Berlin: "

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGABRT, os.Interrupt)
	code := execute(ctx, os.Args[1:], os.Stdin, os.Stdout)
	cancel()
	os.Exit(code)
}

// execute runs the root command and returns the process exit code.
func execute(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) int {
	exitCode := service.ExitOK
	var confPath string

	rootCmd := &cobra.Command{
		Use:   "berlin-poi [flags] [ADDRESS...]",
		Short: "find named points of interest around a Berlin address",
		Long: `
berlin-poi looks up a street address in Berlin, searches OpenStreetMap for
named amenities around it and draws them onto an interactive map that is
saved as an HTML file.

If no address is given on the command line, it is read from standard input.
`,
		Version:       fmt.Sprintf("%s (commit: %s, date: %s)", version, commit, date),
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			exitCode = run(cmd.Context(), confPath, args, cmd.InOrStdin(), cmd.OutOrStdout())
			return nil
		},
	}
	rootCmd.Flags().StringVarP(&confPath, "config", "c", "", "path to the config file")
	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "Error:", err)
		return service.ExitFailure
	}
	return exitCode
}

func run(ctx context.Context, confPath string, args []string, stdin io.Reader, stdout io.Writer) int {
	// Initialize Logger
	log := logger.New(slog.LevelError)

	conf, err := loadConfig(confPath)
	if err != nil {
		log.Error("failed to load config", logger.Err(err))
		return service.ExitFailure
	}
	log = logger.New(conf.LogLevel)

	serv, err := service.NewFromConfig(conf, log, i18n.Language(conf.Locale),
		service.WithOutput(stdout),
		service.WithProgress(service.TerminalProgress(os.Stderr)),
	)
	if err != nil {
		log.Error("failed to initialize berlin-poi service", logger.Err(err))
		return service.ExitFailure
	}

	address := strings.Join(args, " ")
	if len(args) == 0 {
		if address, err = readAddress(stdin, stdout); err != nil {
			log.Error("failed to read address", logger.Err(err))
			return service.ExitFailure
		}
	}

	log.Debug("starting lookup", slog.String("version", version), slog.String("address", address))
	if _, err = serv.Run(ctx, address); err != nil {
		log.Debug("lookup failed", logger.Err(err))
	}
	return service.ExitCode(err)
}

// loadConfig reads the defaults, then either the given config file or the one found in the
// default location.
func loadConfig(confPath string) (*config.Config, error) {
	if confPath != "" {
		return config.NewFromFile(filepath.Dir(confPath), filepath.Base(confPath))
	}
	if path, file := findConfigFile(); path != "" && file != "" {
		return config.NewFromFile(path, file)
	}
	return config.New()
}

// readAddress prompts for an address and reads a single line.
func readAddress(stdin io.Reader, stdout io.Writer) (string, error) {
	if _, err := fmt.Fprint(stdout, prompt); err != nil {
		return "", err
	}
	line, err := bufio.NewReader(stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func findConfigFile() (string, string) {
	homedir, err := os.UserHomeDir()
	if err != nil {
		return "", ""
	}
	exts := []string{"toml", "yaml", "yml", "json"}
	for _, ext := range exts {
		path := filepath.Join(homedir, ".config", "berlin-poi", "config."+ext)
		if _, err = os.Stat(path); err == nil {
			return filepath.Dir(path), filepath.Base(path)
		}
	}
	return "", ""
}
