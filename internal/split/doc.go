// Package split is the file-splitting engine: it partitions a dataset by
// the distinct values of one column, plans bounded chunks with
// deterministic collision-free file names, and writes them through a
// sequential or bounded-concurrent scheduler.
//
// The engine guarantees that every planned chunk is attempted exactly once
// and that a single chunk's write failure never aborts its siblings; the
// aggregate Report accounts for every chunk as either written or failed.
package split
