// Package report renders human-readable text reports from a circulation
// Library: the monthly loan activity followed by the current statistics
// snapshot. It only calls the Library's query operations and never mutates
// registry state; file export is the one piece of I/O it owns.
package report
