// Package memory provides the low-level plumbing between the spool's
// lock-free hot path and its background persistence: a generic object
// pool for journal records and a single-producer single-consumer ring
// that hands popped entries to the outbox writer without locks.
//
// The memory package is dependency-free and must stay off the hot
// path's allocation profile.
package memory
