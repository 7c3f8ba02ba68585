// Package stack implements the lock-free LIFO core of the spool engine.
// It provides two stack variants that differ only in how they prove a
// detached node is safe to reuse: Stack relies on a fixed hazard-pointer
// registry with a deferred-reclaim list, CountedStack embeds a split
// reference count (external count packed into the head word, internal
// compensation count in the node) over a fixed node arena.
//
// Both variants synchronize exclusively through compare-and-swap on the
// head; no operation ever blocks on a mutex. The guarantee is lock-free,
// not wait-free: a single caller can lose the CAS race arbitrarily many
// times under contention, but some caller always wins.
package stack
