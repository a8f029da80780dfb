// Package command invokes external processes on behalf of the build
// pipeline.
//
// Everything the pipeline does not do itself — re-rendering the feedstock,
// pulling docker images, running build scripts — is an external process
// with an exit code and output streams. [Local] runs such invocations on
// the host and reports the exit code without judging it; a non-zero exit
// is a caller concern, not an invocation error.
package command
