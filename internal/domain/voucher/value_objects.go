package voucher

import (
	"errors"
	"regexp"
	"strings"
)

var ErrInvalidCodeFormat = errors.New("invalid voucher code format")

// Voucher codes are issued as BF followed by 4 uppercase alphanumerics.
var codeRegex = regexp.MustCompile(`^BF[A-Z0-9]{4}$`)

type Code string

// NewCode normalizes and validates a voucher code. Input is case-insensitive;
// lookups always run against the normalized form.
func NewCode(raw string) (Code, error) {
	normalized := strings.TrimSpace(strings.ToUpper(raw))
	if !codeRegex.MatchString(normalized) {
		return Code(""), ErrInvalidCodeFormat
	}
	return Code(normalized), nil
}

func (c Code) String() string {
	return string(c)
}
