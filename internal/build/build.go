// Package build holds build-time information.
package build

// Version is the application version.
// It defaults to "0.1" and can be overwritten by linker flags.
var Version = "0.1"

// Commit is the git commit the binary was built from.
var Commit = "none"

// Date is the build date.
var Date = "unknown"
