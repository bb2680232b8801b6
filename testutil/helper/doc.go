// Package helper provides testing spies for the tzsearch observability
// interfaces: loggers, metrics collectors, and tracing collectors that capture
// their calls for assertions.
package helper
