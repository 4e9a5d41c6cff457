package legacy

import "github.com/go-faster/errors"

// Fatal pass-level failures. Either one aborts the pass that owns the
// artifact; sibling passes are unaffected.
var (
	ErrSourceNotFound  = errors.New("source artifact not found")
	ErrMalformedSource = errors.New("malformed source artifact")
)
