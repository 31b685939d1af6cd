// Package services implements the driving ports.
//
// CompareService is the page diff engine: it pairs up two rasterised
// page sequences position by position, normalises and resizes pages,
// delegates pixel differencing to the comparator port, and accumulates
// the per-page results into an overall verdict.
//
// Services depend only on domain types and port interfaces, so they are
// tested with synthetic in-memory image sequences and mock collaborators.
package services
