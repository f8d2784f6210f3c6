// Package sinks provides functionality to print probe measurements in different formats.
//
// At the moment we provide writers for
//   - Graphite plaintext lines, optionally followed by tags (the default),
//   - JSON lines,
//   - and Prometheus text exposition, e.g. for the node_exporter textfile collector.
//
// Every writer prints to standard output unless an output file is given.
package sinks
