// Package cli implements the tbls command-line tool: a trusted dealer
// and the signer, combiner and verifier around it, exchanging keys as
// YAML files of hex-encoded compressed points.
package cli

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	v      *viper.Viper
	logger *zap.Logger
}

// NewRootCommand builds the tbls command tree.
func NewRootCommand() *cobra.Command {
	a := &app{
		v:      viper.New(),
		logger: zap.NewNop(),
	}
	a.v.SetEnvPrefix("TBLS")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	rootCmd := &cobra.Command{
		Use:   "tbls",
		Short: "Threshold BLS signatures with a trusted dealer",
		Long: `tbls deals (t,n)-threshold BLS12-381 keys, produces signature shares,
combines any t of them and verifies individual and combined signatures.

Typical flow:
  tbls deal -t 2 -n 3 --dir keys
  tbls sign --share keys/share-0.yaml -m hello
  tbls sign --share keys/share-2.yaml -m hello
  tbls combine --public keys/public.yaml --sig 0:<hex> --sig 2:<hex>
  tbls verify --public keys/public.yaml -m hello --signature <hex>`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	rootCmd.PersistentFlags().String("config", "", "config file (YAML)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose logging")
	_ = a.v.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = a.v.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.AddCommand(a.dealCmd())
	rootCmd.AddCommand(a.signCmd())
	rootCmd.AddCommand(a.combineCmd())
	rootCmd.AddCommand(a.verifyCmd())
	rootCmd.AddCommand(a.pubkeyCmd())
	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCommand().Execute()
}

func (a *app) init() error {
	if path := a.v.GetString("config"); path != "" {
		a.v.SetConfigFile(path)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	var err error
	if a.v.GetBool("verbose") {
		a.logger, err = zap.NewDevelopment()
	} else {
		cfg := zap.NewProductionConfig()
		cfg.OutputPaths = []string{"stderr"}
		a.logger, err = cfg.Build()
	}
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	return nil
}

// messageFromFlags reads the message from --message, --message-hex or
// --message-file, in that order of preference.
func messageFromFlags(cmd *cobra.Command) ([]byte, error) {
	flags := cmd.Flags()
	if flags.Changed("message") {
		m, _ := flags.GetString("message")
		return []byte(m), nil
	}
	if flags.Changed("message-hex") {
		m, _ := flags.GetString("message-hex")
		return hex.DecodeString(m)
	}
	if flags.Changed("message-file") {
		path, _ := flags.GetString("message-file")
		return os.ReadFile(path)
	}
	return nil, errors.New("one of --message, --message-hex or --message-file is required")
}

func hasMessageFlag(cmd *cobra.Command) bool {
	flags := cmd.Flags()
	return flags.Changed("message") || flags.Changed("message-hex") || flags.Changed("message-file")
}

func addMessageFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("message", "m", "", "message to sign or verify")
	cmd.Flags().String("message-hex", "", "message as hex string")
	cmd.Flags().String("message-file", "", "file containing the message")
}
