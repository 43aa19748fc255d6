// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/wecom-callback/internal/crypto"
	"github.com/MKhiriev/wecom-callback/internal/envelope"
	"github.com/MKhiriev/wecom-callback/internal/mock"
	"github.com/MKhiriev/wecom-callback/internal/workers"
	"github.com/MKhiriev/wecom-callback/models"
)

const (
	testToken          = "t0k"
	testEncodingAESKey = "jWmYm7qr5nMoAUwZRjGtBxmz3KA1tkAj3ykkR6q2B2C"
	testCorpID         = "ww5823bf96d3bd56c7"
	testTimestamp      = int64(1700000000)
	testNonce          = "nonce123"
)

const addContactXML = `<xml>` +
	`<ToUserName><![CDATA[ww5823bf96d3bd56c7]]></ToUserName>` +
	`<FromUserName><![CDATA[sys]]></FromUserName>` +
	`<CreateTime>1700000000</CreateTime>` +
	`<MsgType><![CDATA[event]]></MsgType>` +
	`<Event><![CDATA[change_external_contact]]></Event>` +
	`<ChangeType><![CDATA[add_external_contact]]></ChangeType>` +
	`<UserID><![CDATA[zhangsan]]></UserID>` +
	`<ExternalUserID><![CDATA[woAJ2GCAAAXtWyujaWJHDDGi0mACAAAA]]></ExternalUserID>` +
	`<State><![CDATA[teststate]]></State>` +
	`<WelcomeCode><![CDATA[WELCOMECODE]]></WelcomeCode>` +
	`</xml>`

func newTestCrypto(t *testing.T) (crypto.SignatureVerifier, crypto.MessageCodec) {
	t.Helper()
	codec, err := crypto.NewMessageCodec(testEncodingAESKey, testCorpID)
	require.NoError(t, err)
	return crypto.NewSignatureVerifier(testToken), codec
}

func encrypt(t *testing.T, codec crypto.MessageCodec, payload string) string {
	t.Helper()
	prefix, err := crypto.RandomPrefix()
	require.NoError(t, err)
	ciphertext, err := codec.Encrypt(prefix, []byte(payload))
	require.NoError(t, err)
	return ciphertext
}

// signedDelivery builds the query and body of a push carrying inner.
func signedDelivery(t *testing.T, verifier crypto.SignatureVerifier, codec crypto.MessageCodec, inner string) (models.CallbackQuery, []byte) {
	t.Helper()
	doc := envelope.BuildTransportDocument(verifier, encrypt(t, codec, inner), testTimestamp, testNonce)
	return models.CallbackQuery{
		MsgSignature: doc.Signature,
		Timestamp:    doc.Timestamp,
		Nonce:        doc.Nonce,
	}, []byte(doc.Body)
}

func flipFirst(s string) string {
	if s[0] == 'a' {
		return "b" + s[1:]
	}
	return "a" + s[1:]
}

// inlineSubmitter runs every job synchronously on the caller's goroutine.
func inlineSubmitter(ctrl *gomock.Controller) *mock.MockSubmitter {
	s := mock.NewMockSubmitter(ctrl)
	s.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string, job workers.Job) error {
			_ = job(ctx)
			return nil
		},
	).AnyTimes()
	return s
}

// captureJournal records every saved delivery.
func captureJournal(ctrl *gomock.Controller, got *[]models.DeliveryRecord) *mock.MockDeliveryRepository {
	j := mock.NewMockDeliveryRepository(ctrl)
	j.EXPECT().SaveDelivery(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, rec models.DeliveryRecord) error {
			*got = append(*got, rec)
			return nil
		},
	).AnyTimes()
	return j
}

var fixedNow = time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
