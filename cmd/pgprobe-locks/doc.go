// pgprobe-locks counts locks per database and lock mode
// and prints them as graphite lines suitable for a monitoring agent.
//
// Usage:
//
//	pgprobe-locks [OPTIONS] [print-sql]
//
// The exit code is 0 on success, 2 if the server cannot be queried and 3
// on invalid options. See --help for the complete list of options.
package main
