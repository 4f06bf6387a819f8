package clay

import "log/slog"

// DefaultMaxElementCount is the element capacity of a context created
// without WithMaxElementCount.
const DefaultMaxElementCount = 8192

// Option configures a Context.
type Option func(*Context)

// WithMaxElementCount caps the number of elements declared per pass,
// root container included. Values below 1 are ignored.
func WithMaxElementCount(n int) Option {
	return func(c *Context) {
		if n > 0 {
			c.maxElementCount = n
		}
	}
}

// WithErrorHandler installs the handler errors are reported to.
// A nil handler restores the default, which logs the error.
func WithErrorHandler(h ErrorHandler) Option {
	return func(c *Context) { c.errorHandler = h }
}

// WithLogger sets the logger used for debug output and the default
// error handler.
func WithLogger(l *slog.Logger) Option {
	return func(c *Context) {
		if l != nil {
			c.logger = l
		}
	}
}
