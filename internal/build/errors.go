package build

import "errors"

// Sentinel errors classifying pipeline failures. They are always wrapped
// with contextual information at the call site.
var (
	ErrTheme     = errors.New("docinclude: theme error")
	ErrDiscovery = errors.New("docinclude: discovery error")
	ErrHook      = errors.New("docinclude: hook error")
)
