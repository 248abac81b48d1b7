// Package finder serves lowpoint queries concurrently with result caching.
//
// What:
//
//   - Finder.Find runs lowpoint.FindLowestPoint for one start cell, caching the
//     result under a hash of the grid contents, the start and the tie-break
//     rule, so repeated queries on an equal grid skip the search.
//   - Finder.FindAll fans a batch of starts out over a bounded worker pool and
//     returns results in input order; the first failure cancels the rest.
//   - Prometheus counters track queries, cache hits and failures, and a
//     histogram records the number of terminals each search evaluated.
//
// Every result handed out is a private copy; callers may modify it freely.
package finder
