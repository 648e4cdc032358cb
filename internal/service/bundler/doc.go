// Package bundler drives the external packaging tool that turns the
// question bank application into a standalone executable.
//
// It renders a tool spec file from the bundle manifest, invokes the tool
// with a clean rebuild, and branches solely on whether the expected artifact
// exists afterwards. Tool diagnostics are passed through untouched; the
// operator reads them directly.
package bundler
