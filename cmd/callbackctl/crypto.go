// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/wecom-callback/internal/crypto"
)

func signCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "sign <timestamp> <nonce> <content>",
		Short: "Compute the message signature of a triple",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			verifier, err := opts.verifier()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), verifier.Sign(args[0], args[1], args[2]))
			return nil
		},
	}
}

func encryptCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "encrypt <text>",
		Short: "Encrypt text for the configured corporation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ciphertext, err := encryptText(opts, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ciphertext)
			return nil
		},
	}
}

func decryptCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "decrypt <ciphertext>",
		Short: "Decrypt a ciphertext and print the payload",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			codec, err := opts.codec()
			if err != nil {
				return err
			}
			payload, err := codec.Decrypt(args[0])
			if err != nil {
				return fmt.Errorf("decrypt: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(payload))
			return nil
		},
	}
}

func encryptText(opts *options, text string) (string, error) {
	codec, err := opts.codec()
	if err != nil {
		return "", err
	}
	prefix, err := crypto.RandomPrefix()
	if err != nil {
		return "", err
	}
	ciphertext, err := codec.Encrypt(prefix, []byte(text))
	if err != nil {
		return "", fmt.Errorf("encrypt: %w", err)
	}
	return ciphertext, nil
}
