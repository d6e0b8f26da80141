// Package guard provides a defensive construction pattern for domain objects.
// Embedding a ConstructorGuard lets a type detect whether it was created
// through its designated constructor or left as a zero value, which keeps
// validation from being bypassed by direct struct literals.
package guard

import "errors"

// ErrDefaultConstructorGuard is the fallback error returned by Validate
// when the caller passes a nil validation error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as having passed through its constructor.
// The zero value of the guard fails validation, so any struct embedding it
// must be built via a factory function to be usable.
//
// Example:
//
//	type Slug struct {
//	    value string
//	    guard guard.ConstructorGuard
//	}
//
//	func SlugFrom(raw string) (Slug, error) {
//	    // ...validate raw...
//	    return Slug{value: normalized, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (s Slug) Validate() error {
//	    return s.guard.Validate(ErrSlugIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking an object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when nil)
// if the guarded object was not created via its constructor.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
