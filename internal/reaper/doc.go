// Package reaper runs a probe once: it connects to the server, reaps one set of
// statistics, writes the measurements and maps the outcome to an exit code.
package reaper
