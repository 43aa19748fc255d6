// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package envelope reads and writes the XML documents exchanged with the
// platform callback endpoint.
//
// Two documents are involved:
//
//   - the transport document posted by the platform. Only its Encrypt field
//     is consumed, located by plain text search so that documents that are
//     not well-formed XML still yield the ciphertext;
//   - the inner document recovered after decryption, parsed with
//     encoding/xml into a [models.CallbackEvent].
//
// [BuildTransportDocument] produces a signed transport document and is used
// by the operator CLI and by tests to simulate platform pushes.
package envelope
