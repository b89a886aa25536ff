package sike

import (
	"github.com/pkg/errors"
)

// Sentinel errors. Callers test for them with errors.Is; the values returned
// by this package wrap them with context.
var (
	// ErrConfig reports a parameter set whose tables do not match the
	// degree, height or window they are declared for.
	ErrConfig = errors.New("sike: parameter set misconfigured")

	// ErrNonCanonical reports an encoded field element or scalar that is not
	// fully reduced.
	ErrNonCanonical = errors.New("sike: non-canonical encoding")

	// ErrInvalidLength reports an input of the wrong size.
	ErrInvalidLength = errors.New("sike: invalid input length")

	// ErrBasisNotFound reports that the torsion basis search ran out of
	// candidates.
	ErrBasisNotFound = errors.New("sike: torsion basis not found")

	// ErrKeyNotGenerated reports use of a private key that holds no scalar.
	ErrKeyNotGenerated = errors.New("sike: key not generated")

	// ErrRoleMismatch reports keys that cannot be combined.
	ErrRoleMismatch = errors.New("sike: incompatible key roles")

	// ErrNotInvertible reports a compressed key whose coefficients carry no
	// unit, which no honest key produces.
	ErrNotInvertible = errors.New("sike: compressed key not invertible")
)

func lengthError(what string, got, want int) error {
	return errors.Wrapf(ErrInvalidLength, "%s: got %d bytes, want %d", what, got, want)
}
