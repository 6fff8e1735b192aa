// Package realm provides a reactive terminal UI runtime for Go.
//
// Users import this single package for the runtime API: event sources and
// the scheduler that polls them, the component registry with single focus,
// the application that routes events to components, the update loop that
// drains messages, and the program that drives it all on a terminal.
package realm
