// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-clip-sync/models"
	"golang.org/x/crypto/pbkdf2"
)

const (
	// SaltLen is the length of the per-envelope PBKDF2 salt.
	SaltLen = 16
	// IVLen is the length of the per-envelope AES-GCM nonce.
	IVLen = 12

	keyLen     = 32
	iterations = 100_000

	envelopeSep = ":"
)

// codec is the AES-256-GCM implementation of [Codec].
type codec struct {
	rand io.Reader
}

// NewCodec constructs a [Codec] that draws salts and IVs from the OS CSPRNG.
func NewCodec() Codec {
	return &codec{rand: rand.Reader}
}

// deriveKey turns the room secret into an AES-256 key.
//
// The secret is hashed with SHA-256 first and the digest is used as the
// PBKDF2 password. Feeding a digest into a password KDF is not how PBKDF2
// is meant to be used, but every existing client derives keys this way and
// the envelope format carries no version, so the two steps must stay as
// they are until the wire format is versioned.
func deriveKey(secret string, salt []byte) []byte {
	material := sha256.Sum256([]byte(secret))
	return pbkdf2.Key(material[:], salt, iterations, keyLen, sha256.New)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}

// seal encrypts plaintext under a fresh salt and IV.
func (c *codec) seal(plaintext []byte, secret string) (salt, iv, ciphertext []byte, err error) {
	salt = make([]byte, SaltLen)
	if _, err = io.ReadFull(c.rand, salt); err != nil {
		return nil, nil, nil, fmt.Errorf("generate salt: %w", err)
	}
	iv = make([]byte, IVLen)
	if _, err = io.ReadFull(c.rand, iv); err != nil {
		return nil, nil, nil, fmt.Errorf("generate iv: %w", err)
	}

	gcm, err := newGCM(deriveKey(secret, salt))
	if err != nil {
		return nil, nil, nil, err
	}
	return salt, iv, gcm.Seal(nil, iv, plaintext, nil), nil
}

// open re-derives the key from salt and verifies and decrypts ciphertext.
func open(salt, iv, ciphertext []byte, secret string) ([]byte, error) {
	if len(salt) != SaltLen || len(iv) != IVLen {
		return nil, fmt.Errorf("%w: malformed envelope", ErrDecryption)
	}
	gcm, err := newGCM(deriveKey(secret, salt))
	if err != nil {
		return nil, err
	}
	plain, err := gcm.Open(nil, iv, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryption, err)
	}
	return plain, nil
}

// EncryptString implements [Codec].
func (c *codec) EncryptString(plain, secret string) (string, error) {
	if secret == "" {
		return plain, nil
	}

	salt, iv, ct, err := c.seal([]byte(plain), secret)
	if err != nil {
		return "", fmt.Errorf("encrypt string: %w", err)
	}

	return strings.Join([]string{
		base64.StdEncoding.EncodeToString(salt),
		base64.StdEncoding.EncodeToString(iv),
		base64.StdEncoding.EncodeToString(ct),
	}, envelopeSep), nil
}

// DecryptString implements [Codec].
func (c *codec) DecryptString(envelope, secret string) (string, error) {
	if secret == "" {
		return envelope, nil
	}

	parts := strings.Split(envelope, envelopeSep)
	if len(parts) != 3 {
		return "", fmt.Errorf("%w: expected 3 envelope segments, got %d", ErrDecryption, len(parts))
	}

	segments := make([][]byte, len(parts))
	for i, part := range parts {
		b, err := base64.StdEncoding.DecodeString(part)
		if err != nil {
			return "", fmt.Errorf("%w: decode segment %d: %w", ErrDecryption, i, err)
		}
		segments[i] = b
	}

	plain, err := open(segments[0], segments[1], segments[2], secret)
	if err != nil {
		return "", err
	}
	return string(plain), nil
}

// EncryptBlob implements [Codec].
func (c *codec) EncryptBlob(blob models.Blob, secret string) (models.Blob, error) {
	if secret == "" {
		return blob, nil
	}

	salt, iv, ct, err := c.seal(blob.Data, secret)
	if err != nil {
		return models.Blob{}, fmt.Errorf("encrypt blob: %w", err)
	}

	data := make([]byte, 0, len(salt)+len(iv)+len(ct))
	data = append(data, salt...)
	data = append(data, iv...)
	data = append(data, ct...)

	return models.Blob{ContentType: blob.ContentType, Data: data}, nil
}

// DecryptBlob implements [Codec].
func (c *codec) DecryptBlob(blob models.Blob, secret string) (models.Blob, error) {
	if secret == "" {
		return blob, nil
	}

	if len(blob.Data) < SaltLen+IVLen {
		return models.Blob{}, fmt.Errorf("%w: blob too short", ErrDecryption)
	}

	salt := blob.Data[:SaltLen]
	iv := blob.Data[SaltLen : SaltLen+IVLen]
	ct := blob.Data[SaltLen+IVLen:]

	plain, err := open(salt, iv, ct, secret)
	if err != nil {
		return models.Blob{}, err
	}
	return models.Blob{ContentType: blob.ContentType, Data: plain}, nil
}
