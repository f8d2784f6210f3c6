// pgprobe-bgwriter reports the cumulative background writer and checkpointer counters
// and prints them as graphite lines suitable for a monitoring agent.
//
// Usage:
//
//	pgprobe-bgwriter [OPTIONS] [print-sql]
//
// The exit code is 0 on success, 2 if the server cannot be queried and 3
// on invalid options. See --help for the complete list of options.
package main
