// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/wecom-callback/internal/crypto"
	"github.com/MKhiriev/wecom-callback/internal/envelope"
)

const nonceLength = 16

// requestFlags pins the timestamp and nonce of a generated request.
type requestFlags struct {
	timestamp int64
	nonce     string
}

func (f *requestFlags) register(cmd *cobra.Command) {
	cmd.Flags().Int64Var(&f.timestamp, "timestamp", 0, "Unix timestamp (default now)")
	cmd.Flags().StringVar(&f.nonce, "nonce", "", "Nonce (default random)")
}

func (f *requestFlags) values(opts *options) (int64, string, error) {
	ts := f.timestamp
	if ts == 0 {
		ts = opts.now().Unix()
	}
	nonce := f.nonce
	if nonce == "" {
		var err error
		if nonce, err = crypto.RandomString(nonceLength); err != nil {
			return 0, "", err
		}
	}
	return ts, nonce, nil
}

func handshakeCmd(opts *options) *cobra.Command {
	var req requestFlags
	cmd := &cobra.Command{
		Use:   "handshake <echo>",
		Short: "Print the query string of a URL verification request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			verifier, err := opts.verifier()
			if err != nil {
				return err
			}
			echostr, err := encryptText(opts, args[0])
			if err != nil {
				return err
			}
			ts, nonce, err := req.values(opts)
			if err != nil {
				return err
			}

			timestamp := strconv.FormatInt(ts, 10)
			query := url.Values{
				"msg_signature": {verifier.Sign(timestamp, nonce, echostr)},
				"timestamp":     {timestamp},
				"nonce":         {nonce},
				"echostr":       {echostr},
			}
			fmt.Fprintln(cmd.OutOrStdout(), query.Encode())
			return nil
		},
	}
	req.register(cmd)
	return cmd
}

func pushCmd(opts *options) *cobra.Command {
	var req requestFlags
	cmd := &cobra.Command{
		Use:   "push <inner-xml>",
		Short: "Print the query string and body of a signed event delivery",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			verifier, err := opts.verifier()
			if err != nil {
				return err
			}
			ciphertext, err := encryptText(opts, args[0])
			if err != nil {
				return err
			}
			ts, nonce, err := req.values(opts)
			if err != nil {
				return err
			}

			doc := envelope.BuildTransportDocument(verifier, ciphertext, ts, nonce)
			query := url.Values{
				"msg_signature": {doc.Signature},
				"timestamp":     {doc.Timestamp},
				"nonce":         {doc.Nonce},
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, query.Encode())
			fmt.Fprintln(out, doc.Body)
			return nil
		},
	}
	req.register(cmd)
	return cmd
}
