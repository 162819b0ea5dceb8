// Package version defines the version of potcat.
package version

// Version of potcat.
var Version = "0.2.0"
