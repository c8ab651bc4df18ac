package jot

const version = "0.4.2"

// Version returns the version of the jot format this module
// implements.
func Version() string {
	return version
}
