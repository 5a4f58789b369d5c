package errors

// Convenience functions for common error patterns

// Config errors

func ConfigNotFound(path string, cause error) *DocIncludeError {
	return Wrap(cause, CategoryConfig, SeverityFatal, "configuration file not found").
		WithContext("path", path)
}

func ConfigInvalid(path string, cause error) *DocIncludeError {
	return Wrap(cause, CategoryConfig, SeverityFatal, "configuration file invalid").
		WithContext("path", path)
}

func ValidationFailed(field, reason string) *DocIncludeError {
	return New(CategoryValidation, SeverityFatal, "validation failed: "+field+": "+reason).
		WithContext("field", field).
		WithContext("reason", reason)
}

// Input file errors

func InputFileError(kind, path string, cause error) *DocIncludeError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, kind+" unreadable").
		WithContext("path", path)
}

func PatternError(path string, cause error) *DocIncludeError {
	return Wrap(cause, CategoryPattern, SeverityFatal, "pattern spec failed").
		WithContext("path", path)
}

// Site assembly errors

func ThemeError(name string, cause error) *DocIncludeError {
	return Wrap(cause, CategoryTheme, SeverityFatal, "theme load failed").
		WithContext("theme", name)
}

func PluginFailed(name string, cause error) *DocIncludeError {
	return Wrap(cause, CategoryPlugin, SeverityFatal, "plugin failed").
		WithContext("plugin", name)
}

// Internal errors

func InternalError(message string, cause error) *DocIncludeError {
	return Wrap(cause, CategoryInternal, SeverityFatal, message)
}
