package typeset

import "errors"

// ErrFallbackRender reports that even the one-page processing notice
// could not be rendered. It is the only error Render returns.
var ErrFallbackRender = errors.New("typeset: cannot render fallback document")
