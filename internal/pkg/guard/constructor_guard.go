// Package guard implements a defensive construction pattern for commands,
// queries and value objects. Embedding a ConstructorGuard in a struct makes a
// zero-value instance distinguishable from one built through its constructor,
// so handlers can reject objects that bypassed validation.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is supplied for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as having been built through its
// designated constructor. The zero value fails validation.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking its owner as properly
// constructed. Call it from the owner's constructor only.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the owner was built through its constructor.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
