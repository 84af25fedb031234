// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/unc-network/unc-cli/cmd/accountcmd"
	"github.com/unc-network/unc-cli/cmd/configcmd"
	"github.com/unc-network/unc-cli/cmd/keycmd"
	"github.com/unc-network/unc-cli/cmd/pledgingcmd"
	"github.com/unc-network/unc-cli/cmd/tokenscmd"
	"github.com/unc-network/unc-cli/cmd/validatorcmd"
	"github.com/unc-network/unc-cli/pkg/application"
	"github.com/unc-network/unc-cli/pkg/config"
	"github.com/unc-network/unc-cli/pkg/constants"
	"github.com/unc-network/unc-cli/pkg/prompts"
	"github.com/unc-network/unc-cli/pkg/ux"
)

var (
	app *application.Unc

	logLevel       string
	Version        = "0.1.0"
	cfgFile        string
	nonInteractive bool
)

func NewRootCmd() *cobra.Command {
	// rootCmd represents the base command when called without any subcommands
	rootCmd := &cobra.Command{
		Use: "unc",
		Long: `unc - command line client for the Utility network.

Inspect validators, pledging pools, accounts and balances over JSON-RPC, and
manage the local keychain of access keys.

COMMAND OVERVIEW:

  validators  Current, next and proposed validator sets with seat prices
  pledging    Pledging pools and the validators an account delegates to
  account     Account state, access keys and used accounts
  tokens      Account balances
  key         Key pair generation and recovery from seed phrases
  config      Network connections

Network connections live in ~/.unc-cli/config.toml. Every setting below can
also be given as an UNC_* environment variable (for example UNC_NETWORK).

For detailed command help, use: unc <command> --help`,
		PersistentPreRunE: createApp,
		Version:           Version,
	}

	// Disable printing the completion command
	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.unc-cli/.cli.json)")
	pf.StringVar(&logLevel, "log-level", "WARN", "log level shown on the console")
	pf.BoolVar(&nonInteractive, "non-interactive", false,
		"Disable prompts; fail if required values are missing (also enabled when stdin is not a TTY or CI=1)")
	pf.Bool("verbose", false, "Show verbose output (info level logs)")
	pf.Bool("debug", false, "Show debug output (debug level logs)")
	pf.Bool("quiet", false, "Show only errors (quiet mode)")
	pf.StringP(constants.ConfigOutputFormatKey, "o", "plaintext", "output format: plaintext, json or yaml")
	pf.Int(constants.ConfigRetryAttemptsKey, constants.DefaultRetryAttempts, "attempts made per RPC call when prompting is off")
	pf.Int(constants.ConfigRPCRequestsPerSecond, constants.DefaultRPCRequestsPerSecond, "client side RPC request rate limit")
	for _, key := range []string{
		constants.ConfigOutputFormatKey,
		constants.ConfigRetryAttemptsKey,
		constants.ConfigRPCRequestsPerSecond,
	} {
		cobra.CheckErr(viper.BindPFlag(key, pf.Lookup(key)))
	}

	rootCmd.AddCommand(validatorcmd.NewCmd(app))
	rootCmd.AddCommand(pledgingcmd.NewCmd(app))
	rootCmd.AddCommand(accountcmd.NewCmd(app))
	rootCmd.AddCommand(tokenscmd.NewCmd(app))
	rootCmd.AddCommand(keycmd.NewCmd(app))
	rootCmd.AddCommand(configcmd.NewCmd(app))

	return rootCmd
}

func createApp(cmd *cobra.Command, _ []string) error {
	baseDir, err := setupEnv()
	if err != nil {
		return err
	}
	log, err := setupLogging(baseDir, consoleLevel(cmd))
	if err != nil {
		return err
	}
	if err := initConfig(baseDir, log); err != nil {
		return err
	}

	if nonInteractive {
		prompts.SetNonInteractive(true)
	}
	app.Setup(baseDir, log, config.New(), prompts.NewPrompterForMode())

	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	if err := app.LoadNetworks(home); err != nil {
		return fmt.Errorf("failed loading network connections from %s: %w", app.GetNetworkConfigPath(), err)
	}
	return nil
}

// consoleLevel resolves --debug, --verbose and --quiet before --log-level.
func consoleLevel(cmd *cobra.Command) zapcore.Level {
	flags := cmd.Flags()
	switch {
	case flags.Changed("debug"):
		return zapcore.DebugLevel
	case flags.Changed("verbose"):
		return zapcore.InfoLevel
	case flags.Changed("quiet"):
		return zapcore.ErrorLevel
	}
	lvl, err := zapcore.ParseLevel(strings.ToLower(logLevel))
	if err != nil {
		return zapcore.WarnLevel
	}
	return lvl
}

func setupEnv() (string, error) {
	// Set base dir
	usr, err := user.Current()
	if err != nil {
		// no logger here yet
		fmt.Printf("unable to get system user %s\n", err)
		return "", err
	}
	baseDir := filepath.Join(usr.HomeDir, constants.BaseDirName)

	// Create base dir if it doesn't exist
	err = os.MkdirAll(baseDir, 0o750)
	if err != nil {
		// no logger here yet
		fmt.Printf("failed creating the basedir %s: %s\n", baseDir, err)
		return "", err
	}
	return baseDir, nil
}

// setupLogging writes everything from info up to a rotated file under the
// base dir and mirrors console level records to stderr.
func setupLogging(baseDir string, console zapcore.Level) (*zap.Logger, error) {
	logDir := filepath.Join(baseDir, constants.LogDir)
	if err := os.MkdirAll(logDir, 0o750); err != nil {
		return nil, fmt.Errorf("failed creating log directory: %w", err)
	}

	fileLevel := zapcore.InfoLevel
	if console < fileLevel {
		fileLevel = console
	}
	fileSink := zapcore.AddSync(&lumberjack.Logger{
		Filename:   filepath.Join(logDir, constants.LogFileName),
		MaxSize:    constants.MaxLogFileSize,
		MaxBackups: constants.MaxNumOfLogFiles,
		MaxAge:     constants.RetainOldFiles,
	})
	fileEncoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())

	consoleConfig := zap.NewDevelopmentEncoderConfig()
	consoleConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	consoleConfig.TimeKey = ""
	consoleEncoder := zapcore.NewConsoleEncoder(consoleConfig)

	core := zapcore.NewTee(
		zapcore.NewCore(fileEncoder, fileSink, fileLevel),
		zapcore.NewCore(consoleEncoder, zapcore.Lock(os.Stderr), console),
	)
	log := zap.New(core, zap.AddCaller()).Named("unc")

	// create the user facing logger as a global var
	// User output goes to stdout, logs go to stderr
	ux.Logger = ux.NewUserLog(log, os.Stdout)
	return log, nil
}

// initConfig reads in config file and ENV variables if set.
// Priority: flags > env vars > config file > defaults
func initConfig(baseDir string, log *zap.Logger) error {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(baseDir)
		viper.SetConfigType(constants.DefaultConfigFileType)
		viper.SetConfigName(constants.DefaultConfigFileName)
	}

	// UNC_NETWORK -> network, UNC_RETRY_ATTEMPTS -> retry-attempts, etc.
	viper.SetEnvPrefix(constants.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// No config file is normal, a broken one given explicitly is not
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile != "" {
			return fmt.Errorf("failed reading config file %s: %w", cfgFile, err)
		}
		return nil
	}
	log.Debug("using config file", zap.String("config-file", viper.ConfigFileUsed()))
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	app = application.New()
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\nERROR: %s\n", err)
		os.Exit(1)
	}
}
