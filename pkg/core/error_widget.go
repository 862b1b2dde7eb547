package core

import (
	"sync/atomic"

	"github.com/go-drift/statehooks/pkg/errors"
)

// ErrorWidgetBuilder creates a fallback widget when a widget build fails.
// The builder receives the build error and returns a widget to mount in
// place of the failed subtree. Returning nil selects an empty placeholder.
type ErrorWidgetBuilder func(err *errors.BuildError) Widget

var errorWidgetBuilder atomic.Pointer[ErrorWidgetBuilder]

// SetErrorWidgetBuilder configures the global error widget builder.
// Pass nil to restore the default builder.
func SetErrorWidgetBuilder(builder ErrorWidgetBuilder) {
	if builder == nil {
		errorWidgetBuilder.Store(nil)
		return
	}
	errorWidgetBuilder.Store(&builder)
}

// GetErrorWidgetBuilder returns the current error widget builder.
func GetErrorWidgetBuilder() ErrorWidgetBuilder {
	if b := errorWidgetBuilder.Load(); b != nil {
		return *b
	}
	return DefaultErrorWidgetBuilder
}

// DefaultErrorWidgetBuilder returns nil so the failed subtree renders
// nothing. The error has already been reported by then.
func DefaultErrorWidgetBuilder(err *errors.BuildError) Widget {
	return nil
}

// errorWidgetFor picks what to mount for a failed build: the configured
// builder's widget, or an empty placeholder carrying err.
func errorWidgetFor(err *errors.BuildError) Widget {
	if w := GetErrorWidgetBuilder()(err); w != nil {
		return w
	}
	return errorPlaceholder{err: err}
}

// errorPlaceholder is mounted in place of a failed subtree when no error
// widget was built.
type errorPlaceholder struct {
	StatelessBase
	err *errors.BuildError
}

func (p errorPlaceholder) Build(ctx BuildContext) Widget {
	return nil
}
