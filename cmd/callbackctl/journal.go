// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/wecom-callback/internal/config"
	"github.com/MKhiriev/wecom-callback/internal/store"
	"github.com/MKhiriev/wecom-callback/models"
)

const defaultJournalLimit = 50

var knownOutcomes = map[models.DeliveryOutcome]struct{}{
	models.DeliveryAccepted:          {},
	models.DeliveryMalformedEnvelope: {},
	models.DeliverySignatureMismatch: {},
	models.DeliveryDecryptionFailed:  {},
	models.DeliveryUnparsableEvent:   {},
	models.DeliveryHandlerFailed:     {},
	models.DeliveryDropped:           {},
}

func journalCmd(opts *options) *cobra.Command {
	var (
		dsn     string
		outcome string
		kind    string
		limit   uint64
	)

	cmd := &cobra.Command{
		Use:   "journal",
		Short: "List recorded deliveries, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if dsn == "" {
				return fmt.Errorf("--dsn is required")
			}

			filter := models.DeliveryFilter{Limit: limit}
			if outcome != "" {
				if _, ok := knownOutcomes[models.DeliveryOutcome(outcome)]; !ok {
					return fmt.Errorf("unknown outcome %q", outcome)
				}
				filter.Outcome = models.DeliveryOutcome(outcome)
			}
			if kind != "" {
				if _, ok := models.ParseEventKind(kind); !ok {
					return fmt.Errorf("unknown event kind %q", kind)
				}
				filter.Kind = kind
			}

			storages, err := store.NewStorages(cmd.Context(), config.Storage{DB: config.DB{DSN: dsn}}, opts.logger())
			if err != nil {
				return err
			}
			defer storages.Close()

			records, err := storages.DeliveryRepository.ListDeliveries(cmd.Context(), filter)
			if err != nil {
				return fmt.Errorf("list deliveries: %w", err)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "RECEIVED_AT\tOUTCOME\tKIND\tMSG_ID\tTRACE_ID\tREASON")
			for _, rec := range records {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					rec.ReceivedAt.UTC().Format(time.RFC3339),
					rec.Outcome,
					rec.Kind,
					msgID(rec.MsgID),
					rec.TraceID,
					rec.Reason,
				)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&dsn, "dsn", "", "Journal DSN: postgres:// URL or SQLite file path")
	cmd.Flags().StringVar(&outcome, "outcome", "", "Only show this outcome")
	cmd.Flags().StringVar(&kind, "kind", "", "Only show this event kind")
	cmd.Flags().Uint64Var(&limit, "limit", defaultJournalLimit, "Maximum number of records")
	return cmd
}

func msgID(id *int64) string {
	if id == nil {
		return "-"
	}
	return strconv.FormatInt(*id, 10)
}
