package uuidv1

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
)

// Encoding selects a textual rendering of a UUID.
type Encoding string

const (
	EncodingCanonical Encoding = "text"
	EncodingHex       Encoding = "hex"
	EncodingBase64    Encoding = "base64"
	EncodingBase64Std Encoding = "base64std"
)

// ParseEncoding validates an Encoding name. The empty string selects
// EncodingCanonical.
func ParseEncoding(s string) (Encoding, error) {
	switch e := Encoding(s); e {
	case "":
		return EncodingCanonical, nil
	case EncodingCanonical, EncodingHex, EncodingBase64, EncodingBase64Std:
		return e, nil
	default:
		return "", fmt.Errorf("uuidv1: unknown encoding %q", s)
	}
}

// Encode renders u in the given encoding. Unknown encodings render the
// canonical form.
func (u UUID) Encode(enc Encoding) string {
	switch enc {
	case EncodingHex:
		return u.EncodeToHex()
	case EncodingBase64:
		return u.EncodeToBase64()
	case EncodingBase64Std:
		return u.EncodeToBase64Std()
	default:
		return u.String()
	}
}

// EncodeToHex encodes the UUID to a hexadecimal string without hyphens
func (u UUID) EncodeToHex() string {
	return hex.EncodeToString(u[:])
}

// EncodeToBase64 encodes the UUID to a base64 string (URL-safe, no padding)
func (u UUID) EncodeToBase64() string {
	return base64.RawURLEncoding.EncodeToString(u[:])
}

// EncodeToBase64Std encodes the UUID to a standard base64 string
func (u UUID) EncodeToBase64Std() string {
	return base64.StdEncoding.EncodeToString(u[:])
}
