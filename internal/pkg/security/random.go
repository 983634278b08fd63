package security

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"
)

func GenerateRandomBytes(length uint32) ([]byte, error) {
	key := make([]byte, length)

	if _, err := rand.Read(key); err != nil {
		return nil, err
	}

	return key, nil
}

func GenerateRandomBytesURLEncoded(length uint32) (string, error) {
	key, err := GenerateRandomBytes(length)
	if err != nil {
		return "", err
	}

	return base64.RawURLEncoding.EncodeToString(key), nil
}

// GenerateRandomBytesHex returns the hex encoding of length random bytes,
// suitable for password reset tokens carried in a URL.
func GenerateRandomBytesHex(length uint32) (string, error) {
	key, err := GenerateRandomBytes(length)
	if err != nil {
		return "", err
	}

	return hex.EncodeToString(key), nil
}

// GenerateOTP returns a numeric one-time passcode with the given number of digits.
func GenerateOTP(digits uint32) (string, error) {
	if digits == 0 {
		return "", fmt.Errorf("otp digits must be greater than zero")
	}

	buf, err := GenerateRandomBytes(digits)
	if err != nil {
		return "", err
	}

	otp := make([]byte, digits)
	for i, b := range buf {
		otp[i] = '0' + b%10
	}

	return string(otp), nil
}
