// Package cli is responsible for parsing command-line arguments and their
// environment fallbacks, validating user input, and handling process-level
// concerns like exit codes. It translates flags into the application's
// internal configuration.
package cli
