// Package output implements the file sink side of sitemap generation.
//
// The package is organized around three concerns:
//
//   - Writers (writer.go): Pluggable output destinations via the [Writer]
//     interface, with [StdoutWriter] and [FileWriter] implementations.
//
//   - Sink errors (writer.go): [SinkError] carries a [SinkErrorKind] so
//     callers can distinguish directory creation failures, non-writable
//     destinations, and plain write failures from input problems.
//
//   - Registry (registry.go): named sink factories for the CLI.
//
// Nothing in this package inspects payloads; encoders finish entirely
// in memory before a Writer is invoked.
package output
