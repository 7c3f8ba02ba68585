// Package service is the only write entry point into the spool engine.
// All coordination between the domain (lock-free stack), infra (journal,
// outbox, ring, sequencer) and the API surface happens here.
package service
