// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envelope

import (
	"strconv"
	"strings"

	"github.com/MKhiriev/wecom-callback/internal/crypto"
)

// TransportDocument is a signed transport document together with the values
// that go into the callback query string.
type TransportDocument struct {
	Body      string
	Signature string
	Timestamp string
	Nonce     string
}

// BuildTransportDocument wraps ciphertext into a transport document signed
// with verifier. The same signature is what the platform sends as the
// msg_signature query parameter.
func BuildTransportDocument(verifier crypto.SignatureVerifier, ciphertext string, timestamp int64, nonce string) TransportDocument {
	ts := strconv.FormatInt(timestamp, 10)
	sig := verifier.Sign(ts, nonce, ciphertext)

	var b strings.Builder
	b.WriteString("<xml>")
	b.WriteString(cdataOpen + ciphertext + cdataClose)
	b.WriteString("<MsgSignature><![CDATA[" + sig + "]]></MsgSignature>")
	b.WriteString("<TimeStamp>" + ts + "</TimeStamp>")
	b.WriteString("<Nonce><![CDATA[" + nonce + "]]></Nonce>")
	b.WriteString("</xml>")

	return TransportDocument{
		Body:      b.String(),
		Signature: sig,
		Timestamp: ts,
		Nonce:     nonce,
	}
}
