// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/MKhiriev/wecom-callback/internal/crypto"
	"github.com/MKhiriev/wecom-callback/internal/envelope"
	"github.com/MKhiriev/wecom-callback/internal/logger"
	"github.com/MKhiriev/wecom-callback/internal/store"
	"github.com/MKhiriev/wecom-callback/internal/utils"
	"github.com/MKhiriev/wecom-callback/internal/workers"
	"github.com/MKhiriev/wecom-callback/models"
)

// Literal reply bodies of the callback protocol.
const (
	AckSuccess = "success"
	AckFail    = "fail"
)

const tracerName = "github.com/MKhiriev/wecom-callback/internal/service"

type callbackService struct {
	verifier crypto.SignatureVerifier
	codec    crypto.MessageCodec
	registry *Registry

	journal   store.DeliveryRepository
	submitter workers.Submitter

	tracer trace.Tracer
	now    func() time.Time
	logger *logger.Logger
}

// NewCallbackService wires the dispatcher. Handler invocations and journal
// writes are handed to submitter; journal may be a no-op repository.
func NewCallbackService(
	verifier crypto.SignatureVerifier,
	codec crypto.MessageCodec,
	registry *Registry,
	journal store.DeliveryRepository,
	submitter workers.Submitter,
	log *logger.Logger,
) CallbackService {
	if registry == nil {
		registry = NewRegistry()
	}
	if journal == nil {
		journal = store.NewNopDeliveryRepository()
	}

	return &callbackService{
		verifier:  verifier,
		codec:     codec,
		registry:  registry,
		journal:   journal,
		submitter: submitter,
		tracer:    otel.Tracer(tracerName),
		now:       time.Now,
		logger:    log,
	}
}

// VerifyURL implements [CallbackService].
func (s *callbackService) VerifyURL(ctx context.Context, query models.CallbackQuery) (string, error) {
	ctx, span := s.tracer.Start(ctx, "CallbackService.VerifyURL")
	defer span.End()

	log := logger.FromContextOr(ctx, s.logger)

	echo, err := s.verifyURL(query)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "verification failed")
		log.Warn().Err(err).Str("func", "VerifyURL").
			Str("timestamp", query.Timestamp).
			Str("nonce", query.Nonce).
			Msg("url verification rejected")
		return "", err
	}

	log.Info().Str("func", "VerifyURL").Msg("url verification succeeded")
	return echo, nil
}

func (s *callbackService) verifyURL(query models.CallbackQuery) (string, error) {
	if !query.IsHandshakeComplete() {
		return "", fmt.Errorf("%w: %w", ErrVerificationFailed, ErrIncompleteQuery)
	}

	if !s.verifier.Verify(query.Timestamp, query.Nonce, query.EchoStr, query.MsgSignature) {
		return "", fmt.Errorf("%w: %w", ErrVerificationFailed, ErrSignatureMismatch)
	}

	plain, err := s.codec.Decrypt(query.EchoStr)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrVerificationFailed, err)
	}

	return string(plain), nil
}

// HandleDelivery implements [CallbackService].
func (s *callbackService) HandleDelivery(ctx context.Context, query models.CallbackQuery, body []byte) string {
	ctx, span := s.tracer.Start(ctx, "CallbackService.HandleDelivery")
	defer span.End()

	log := logger.FromContextOr(ctx, s.logger)

	rec := models.DeliveryRecord{ReceivedAt: s.now().UTC()}
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		rec.TraceID = traceID
	}

	event, err := s.openDelivery(query, body, &rec)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, string(rec.Outcome))
		log.Warn().Err(err).Str("func", "HandleDelivery").
			Str("outcome", string(rec.Outcome)).
			Str("timestamp", query.Timestamp).
			Str("nonce", query.Nonce).
			Msg("delivery rejected")
		s.journalAsync(ctx, rec)
		return AckSuccess
	}

	span.SetAttributes(
		attribute.String("callback.kind", event.Kind.String()),
		attribute.String("callback.msg_type", event.MsgType),
	)

	s.dispatch(ctx, event, rec)
	return AckSuccess
}

// openDelivery authenticates, decrypts and parses a push. On failure rec
// carries the outcome and reason; on success it is filled from the event.
func (s *callbackService) openDelivery(query models.CallbackQuery, body []byte, rec *models.DeliveryRecord) (*models.CallbackEvent, error) {
	reject := func(outcome models.DeliveryOutcome, err error) (*models.CallbackEvent, error) {
		rec.Outcome = outcome
		rec.Reason = err.Error()
		return nil, err
	}

	ciphertext, err := envelope.ExtractEncrypt(string(body))
	if err != nil {
		return reject(models.DeliveryMalformedEnvelope, err)
	}

	if !s.verifier.Verify(query.Timestamp, query.Nonce, ciphertext, query.MsgSignature) {
		return reject(models.DeliverySignatureMismatch, ErrSignatureMismatch)
	}

	plain, err := s.codec.Decrypt(ciphertext)
	if err != nil {
		return reject(models.DeliveryDecryptionFailed, err)
	}

	event, err := envelope.ParseEvent(plain)
	if event != nil {
		fillRecord(rec, event)
	}
	if err != nil {
		return reject(models.DeliveryUnparsableEvent, err)
	}

	return event, nil
}

func fillRecord(rec *models.DeliveryRecord, event *models.CallbackEvent) {
	rec.MsgID = event.MsgID
	rec.ToUserName = event.ToUserName
	rec.FromUserName = event.FromUserName
	rec.MsgType = event.MsgType
	rec.Event = event.Event
	rec.ChangeType = event.ChangeType
	rec.Kind = event.Kind.String()
}

// dispatch schedules the handler for event. The outcome is journaled by the
// job itself once the handler returns.
func (s *callbackService) dispatch(ctx context.Context, event *models.CallbackEvent, rec models.DeliveryRecord) {
	log := logger.FromContextOr(ctx, s.logger).With().
		Str("kind", event.Kind.String()).
		Logger()

	handler := s.registry.Lookup(event.Kind)

	job := func(ctx context.Context) error {
		err := invoke(ctx, handler, event)
		if err != nil {
			rec.Outcome = models.DeliveryHandlerFailed
			rec.Reason = err.Error()
		} else {
			rec.Outcome = models.DeliveryAccepted
		}
		s.record(ctx, rec)
		return err
	}

	if err := s.submitter.Submit(ctx, "event:"+event.Kind.String(), job); err != nil {
		log.Error().Err(err).Str("func", "dispatch").Msg("event dropped")
		rec.Outcome = models.DeliveryDropped
		rec.Reason = err.Error()
		s.journalAsync(ctx, rec)
		return
	}

	log.Debug().Str("func", "dispatch").Msg("event scheduled")
}

// invoke runs handler and converts both errors and panics into
// [ErrHandlerFailure].
func invoke(ctx context.Context, handler EventHandler, event *models.CallbackEvent) (err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.FromContext(ctx).Error().
				Interface("panic", r).
				Bytes("stack", debug.Stack()).
				Msg("event handler panicked")
			err = fmt.Errorf("%w: %w: %v", ErrHandlerFailure, ErrHandlerPanic, r)
		}
	}()

	if err = handler.Handle(ctx, event); err != nil {
		return fmt.Errorf("%w: %w", ErrHandlerFailure, err)
	}
	return nil
}

func (s *callbackService) journalAsync(ctx context.Context, rec models.DeliveryRecord) {
	err := s.submitter.Submit(ctx, "journal:"+string(rec.Outcome), func(ctx context.Context) error {
		s.record(ctx, rec)
		return nil
	})
	if err != nil && !errors.Is(err, workers.ErrPoolClosed) {
		logger.FromContextOr(ctx, s.logger).Warn().Err(err).
			Str("outcome", string(rec.Outcome)).
			Msg("delivery not journaled")
	}
}

func (s *callbackService) record(ctx context.Context, rec models.DeliveryRecord) {
	if err := s.journal.SaveDelivery(ctx, rec); err != nil {
		logger.FromContextOr(ctx, s.logger).Error().Err(err).
			Str("outcome", string(rec.Outcome)).
			Msg("error saving delivery record")
	}
}
