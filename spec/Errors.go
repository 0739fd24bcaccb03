package spec

import "errors"

// Error implements errors arising from decoding or encoding typed
// nodes.
type Error struct {
	Kind string // node family, e.g. "optimizer"
	Op   string // failing operation
	Tag  string // offending type tag, if known
	Err  error
}

// Error satisfies the error interface
func (e *Error) Error() string {
	if e.Tag != "" {
		return e.Kind + " " + e.Op + " " + e.Tag + ": " + e.Err.Error()
	}
	return e.Kind + " " + e.Op + ": " + e.Err.Error()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error { return e.Err }

var errMissingType = errors.New(`node has no "type" field`)

var errUnknownType = errors.New("unregistered type")

var errTagCollision = errors.New(`configuration already sets a "type" ` +
	`field`)

// IsMissingType returns whether or not an error reports that a node
// had no "type" field to dispatch on.
func IsMissingType(err error) bool {
	return errors.Is(err, errMissingType)
}

// IsUnknownType returns whether or not an error reports that a node
// named a type tag with no registered configuration.
func IsUnknownType(err error) bool {
	return errors.Is(err, errUnknownType)
}
