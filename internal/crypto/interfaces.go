// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements the end-to-end encryption applied to clipboard
// payloads before they leave the machine.
//
// Every payload value and every attachment blob is sealed with AES-256-GCM
// under a key derived from the room secret. A fresh salt and IV are drawn
// for every call, so identical plaintexts never produce identical
// envelopes. Two envelope layouts exist:
//
//	string: base64(salt) ":" base64(iv) ":" base64(ciphertext)
//	binary: salt(16) || iv(12) || ciphertext
//
// An empty secret disables encryption: both directions pass data through.
package crypto

import "github.com/MKhiriev/go-clip-sync/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/codec_mock.go -package=mock

// Codec encrypts and decrypts clipboard data with a room secret.
//
// Decryption failures of any kind (wrong secret, tampered envelope,
// malformed layout) are reported as [ErrDecryption].
type Codec interface {
	// EncryptString seals plain and returns the string envelope.
	EncryptString(plain, secret string) (string, error)

	// DecryptString opens a string envelope produced by EncryptString and
	// returns the UTF-8 plaintext.
	DecryptString(envelope, secret string) (string, error)

	// EncryptBlob seals the blob data. The content type is kept as is.
	EncryptBlob(blob models.Blob, secret string) (models.Blob, error)

	// DecryptBlob opens a binary envelope produced by EncryptBlob. The
	// content type is kept as is.
	DecryptBlob(blob models.Blob, secret string) (models.Blob, error)
}
