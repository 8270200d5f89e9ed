package command

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidFlag is returned when a literal can't be used as a flag identity.
var ErrInvalidFlag = errors.New("invalid flag")

// FlagIdentity identifies a flag by its short (-x) or long (--name) spelling.
// Exactly one of the two is set for a well formed identity.
type FlagIdentity struct {
	Short string
	Long  string
}

// ShortFlag creates a short flag identity, literal includes the leading dash.
func ShortFlag(literal string) FlagIdentity {
	return FlagIdentity{Short: literal}
}

// LongFlag creates a long flag identity, literal includes the leading dashes.
func LongFlag(literal string) FlagIdentity {
	return FlagIdentity{Long: literal}
}

// ParseFlagIdentity builds an identity from its literal spelling.
func ParseFlagIdentity(literal string) (FlagIdentity, error) {
	switch {
	case strings.HasPrefix(literal, "--"):
		return LongFlag(literal), nil
	case strings.HasPrefix(literal, "-"):
		return ShortFlag(literal), nil
	default:
		return FlagIdentity{}, fmt.Errorf("%w: %s", ErrInvalidFlag, literal)
	}
}

// IsLong returns true if the identity is a long flag.
func (f FlagIdentity) IsLong() bool {
	return f.Long != ""
}

// String returns the literal spelling of the flag.
func (f FlagIdentity) String() string {
	if f.IsLong() {
		return f.Long
	}
	return f.Short
}

// Flag is a flag and its optional attached value.
type Flag struct {
	Identity FlagIdentity
	Value    *string
}

// NewFlag creates a flag without a value.
func NewFlag(identity FlagIdentity) Flag {
	return Flag{Identity: identity}
}

// NewFlagWithValue creates a flag with an attached value.
func NewFlagWithValue(identity FlagIdentity, value string) Flag {
	return Flag{Identity: identity, Value: &value}
}

// HasValue returns true if a value was attached to the flag.
func (f Flag) HasValue() bool {
	return f.Value != nil
}

// String renders the flag the way it would be passed to a program.
func (f Flag) String() string {
	if f.Value == nil {
		return f.Identity.String()
	}
	return f.Identity.String() + "=" + *f.Value
}

// Flags is an ordered list of flags.
type Flags []Flag

// Has returns true if any flag matches one of the given literal spellings.
func (fs Flags) Has(literals ...string) bool {
	for _, f := range fs {
		for _, lit := range literals {
			if f.Identity.String() == lit {
				return true
			}
		}
	}
	return false
}
