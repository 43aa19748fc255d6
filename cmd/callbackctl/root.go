// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/wecom-callback/internal/config"
	"github.com/MKhiriev/wecom-callback/internal/crypto"
	"github.com/MKhiriev/wecom-callback/internal/logger"
	"github.com/MKhiriev/wecom-callback/models"
)

// options holds the persistent flags shared by every subcommand.
type options struct {
	token          string
	encodingAESKey string
	corpID         string
	envFile        string
	verbose        bool

	now func() time.Time
}

func newRootCmd(buildInfo models.AppBuildInfo) *cobra.Command {
	opts := &options{now: time.Now}

	rootCmd := &cobra.Command{
		Use:           "callbackctl",
		Short:         "Operator tool for the WeCom callback server",
		SilenceUsage:  true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.token, "token", "", "Callback token (or set APP_TOKEN)")
	rootCmd.PersistentFlags().StringVar(&opts.encodingAESKey, "encoding-aes-key", "", "43-character EncodingAESKey (or set APP_ENCODING_AES_KEY)")
	rootCmd.PersistentFlags().StringVar(&opts.corpID, "corp-id", "", "Corporation id (or set APP_CORP_ID)")
	rootCmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "Dotenv file read for missing credentials")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log to stderr")

	rootCmd.AddCommand(signCmd(opts))
	rootCmd.AddCommand(encryptCmd(opts))
	rootCmd.AddCommand(decryptCmd(opts))
	rootCmd.AddCommand(handshakeCmd(opts))
	rootCmd.AddCommand(pushCmd(opts))
	rootCmd.AddCommand(journalCmd(opts))
	rootCmd.AddCommand(versionCmd(buildInfo))

	return rootCmd
}

// resolve fills credentials not given as flags from the environment.
func (o *options) resolve() error {
	if o.token != "" && o.encodingAESKey != "" && o.corpID != "" {
		return nil
	}

	app, err := config.GetAppConfig(o.envFile)
	if err != nil {
		return fmt.Errorf("reading credentials from environment: %w", err)
	}

	if o.token == "" {
		o.token = app.Token
	}
	if o.encodingAESKey == "" {
		o.encodingAESKey = app.EncodingAESKey
	}
	if o.corpID == "" {
		o.corpID = app.CorpID
	}
	return nil
}

func (o *options) verifier() (crypto.SignatureVerifier, error) {
	if err := o.resolve(); err != nil {
		return nil, err
	}
	if o.token == "" {
		return nil, fmt.Errorf("--token is required (or set APP_TOKEN)")
	}
	return crypto.NewSignatureVerifier(o.token), nil
}

func (o *options) codec() (crypto.MessageCodec, error) {
	if err := o.resolve(); err != nil {
		return nil, err
	}
	if o.encodingAESKey == "" || o.corpID == "" {
		return nil, fmt.Errorf("--encoding-aes-key and --corp-id are required (or set APP_ENCODING_AES_KEY and APP_CORP_ID)")
	}
	return crypto.NewMessageCodec(o.encodingAESKey, o.corpID)
}

func (o *options) logger() *logger.Logger {
	if o.verbose {
		return logger.NewConsoleLogger("callbackctl")
	}
	return logger.Nop()
}

func versionCmd(buildInfo models.AppBuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			info := buildInfo.OrUnknown()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Build version: %s\n", info.BuildVersion())
			fmt.Fprintf(out, "Build date: %s\n", info.BuildDate())
			fmt.Fprintf(out, "Build commit: %s\n", info.BuildCommit())
		},
	}
}
