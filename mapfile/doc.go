// Package mapfile loads and saves a clearance.ClearanceMap using the
// line-oriented text format described in spec §6: a header line of
// "<rows> <cols>", followed by one "<x> <y> <radius>" line per obstacle.
// Load is tolerant: malformed lines and obstacles that ClearanceMap.Insert
// rejects are skipped silently rather than failing the whole load, since a
// single corrupt record should not discard an otherwise-valid map.
package mapfile
