// Parses flags and dispatches the smithy-local subcommands.
//
// The tool exposes three commands:
//
//	list      List the jobs of the local build matrix.
//	run       Run the local build matrix.
//	version   Show version information.
//
// Root flags -q, -v and -d override the build-time defaults set via linker
// flags. After parsing, the global logger is reconfigured to reflect the
// final level before the selected command runs.
package cli
