// Package editor holds the single-image editing session and its script
// mode.
//
// A Session owns the one current image of a workflow: open a file, apply
// transforms, save the result. All operations go through the session mutex,
// so a shared session serializes callers instead of interleaving them.
// RunScript drives a session from a line-oriented command stream, which is
// how the CLI's script subcommand and batch files use it.
package editor
