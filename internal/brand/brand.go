// Package brand provides nominal wrappers around primitive values. Each type
// has a validating constructor and an unchecked one; the inner value is only
// reachable through accessors, never for mutation.
package brand

import (
	"errors"
	"fmt"
	"math"
	"net/mail"

	"github.com/Masterminds/semver/v3"
	emailnormalizer "github.com/dimuska139/go-email-normalizer/v2"
)

var (
	ErrInvalidEmailAddress = errors.New("invalid email address")
	ErrNotPositive         = errors.New("value is not positive")
	ErrNotReal             = errors.New("value is not a real number")
)

// SemVer is a validated semantic version.
type SemVer struct {
	version *semver.Version
}

func ParseSemVer(s string) (SemVer, error) {
	v, err := semver.NewVersion(s)
	if err != nil {
		return SemVer{}, fmt.Errorf("invalid semantic version %q: %w", s, err)
	}
	return SemVer{version: v}, nil
}

// UncheckedSemVer panics on malformed input; callers use it for literals that
// are known to be valid.
func UncheckedSemVer(s string) SemVer {
	return SemVer{version: semver.MustParse(s)}
}

func (v SemVer) String() string {
	if v.version == nil {
		return "0.0.0"
	}
	return v.version.String()
}

func (v SemVer) Major() uint64 { return v.version.Major() }
func (v SemVer) Minor() uint64 { return v.version.Minor() }
func (v SemVer) Patch() uint64 { return v.version.Patch() }

func (v SemVer) LessThan(other SemVer) bool {
	return v.version.LessThan(other.version)
}

var defaultEmailNormalizer = emailnormalizer.NewNormalizer()

// Email is a checked, normalized email address.
type Email struct {
	address string
}

func ParseEmail(s string) (Email, error) {
	if _, err := mail.ParseAddress(s); err != nil {
		return Email{}, ErrInvalidEmailAddress
	}
	return Email{address: defaultEmailNormalizer.Normalize(s)}, nil
}

func UncheckedEmail(s string) Email { return Email{address: s} }

func (e Email) String() string { return e.address }

// PositiveInt is an int known to be > 0.
type PositiveInt struct {
	value int
}

func ParsePositiveInt(n int) (PositiveInt, error) {
	if n <= 0 {
		return PositiveInt{}, fmt.Errorf("%w: %d", ErrNotPositive, n)
	}
	return PositiveInt{value: n}, nil
}

func UncheckedPositiveInt(n int) PositiveInt { return PositiveInt{value: n} }

func (p PositiveInt) Int() int { return p.value }

// Real is a finite float64 (neither NaN nor an infinity).
type Real struct {
	value float64
}

func ParseReal(f float64) (Real, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Real{}, fmt.Errorf("%w: %v", ErrNotReal, f)
	}
	return Real{value: f}, nil
}

func UncheckedReal(f float64) Real { return Real{value: f} }

func (r Real) Float64() float64 { return r.value }
