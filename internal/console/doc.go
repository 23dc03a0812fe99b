// Package console implements the interactive RMD shell: it reads a
// projection request from a line-oriented reader, prints the projection
// table and totals, and offers to export the result.
package console
