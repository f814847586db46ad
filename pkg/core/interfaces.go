package core

// Logger interface for raymarcher logging
type Logger interface {
	Printf(format string, args ...interface{})
}
