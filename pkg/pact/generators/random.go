package generators

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/woodsbury/decimal128"
)

// randomUint64 reads a uniformly distributed uint64 from a CSPRNG, grounded
// on the teacher's internal/id package convention of using crypto/rand
// directly rather than a seeded math/rand source.
func randomUint64() (uint64, error) {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(buf[:]), nil
}

func randomInt(min, max int) (int, error) {
	if max < min {
		return 0, genErr(RandomInt, "max %d is less than min %d", max, min)
	}
	span := uint64(max-min) + 1
	if span == 0 {
		n, err := randomUint64()
		if err != nil {
			return 0, err
		}
		return min + int(n), nil
	}
	n, err := randomUint64()
	if err != nil {
		return 0, err
	}
	return min + int(n%span), nil
}

func randomDigits(n int) (string, error) {
	if n <= 0 {
		return "", genErr(RandomDecimal, "digit count must be positive, got %d", n)
	}
	const digits = "0123456789"
	buf := make([]byte, n)
	raw := make([]byte, n)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	for i, b := range raw {
		buf[i] = digits[int(b)%10]
	}
	return string(buf), nil
}

// randomDecimal produces a string-encoded decimal with exactly digits
// significant digits after the point, validated by parsing it through
// decimal128 — the same library the Decimal matching rule uses to confirm
// the value it is handed is a legal decimal.
func randomDecimal(digits int) (string, error) {
	whole, err := randomDigits(1)
	if err != nil {
		return "", err
	}
	frac, err := randomDigits(digits)
	if err != nil {
		return "", err
	}
	s := whole + "." + frac
	if _, err := decimal128.Parse(s); err != nil {
		return "", genErr(RandomDecimal, "generated value %q did not parse as a decimal: %v", s, err)
	}
	return s, nil
}

func randomHexadecimal(digits int) (string, error) {
	if digits <= 0 {
		return "", genErr(RandomHexadecimal, "digit count must be positive, got %d", digits)
	}
	nbytes := (digits + 1) / 2
	raw := make([]byte, nbytes)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	return hex.EncodeToString(raw)[:digits], nil
}

const randomStringAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func randomString(n int) (string, error) {
	if n <= 0 {
		return "", genErr(RandomString, "length must be positive, got %d", n)
	}
	raw := make([]byte, n)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	var sb strings.Builder
	sb.Grow(n)
	for _, b := range raw {
		sb.WriteByte(randomStringAlphabet[int(b)%len(randomStringAlphabet)])
	}
	return sb.String(), nil
}

func generateUUID(format UUIDFormat) (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	switch format {
	case UUIDSimple:
		return strings.ReplaceAll(id.String(), "-", ""), nil
	case UUIDUpperCaseHyphenated:
		return strings.ToUpper(id.String()), nil
	case UUIDURN:
		return fmt.Sprintf("urn:uuid:%s", id.String()), nil
	case UUIDLowerCaseHyphenated, "":
		return id.String(), nil
	default:
		return "", genErr(Uuid, "unknown uuid format %q", format)
	}
}

func randomBoolean() bool {
	n, err := randomUint64()
	if err != nil {
		return false
	}
	return n%2 == 0
}
