// Package modelgrid carries project-level metadata shared by the library
// and the CLI.
package modelgrid

// Version is the modelgrid release version.
const Version = "0.1.0"
