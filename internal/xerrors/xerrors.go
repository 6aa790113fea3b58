// Package xerrors centralizes the sentinel-error and wrapping conventions
// used by every package in this module.
//
// Each package still declares its own sentinel errors with errors.New, in
// the teacher's style (see core, traverse); xerrors only standardizes how a
// low-level cause is attached to one of those sentinels so every "%w" chain
// reads the same way across packages.
package xerrors

import "fmt"

// Wrap attaches cause to sentinel, producing an error that both
// errors.Is(_, sentinel) and errors.Is(_, cause) recognize.
func Wrap(sentinel error, context string, cause error) error {
	if cause == nil {
		return fmt.Errorf("%w: %s", sentinel, context)
	}
	return fmt.Errorf("%w: %s: %w", sentinel, context, cause)
}
