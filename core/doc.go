// Package core defines the shared types used across idelog.
//
// It provides the Level type for severity filtering, the Record type that
// represents a single log event, and the helpers that capture the calling
// thread and source location.
//
// Levels are ordered from the most to the least important: ERROR first,
// TRACE last. Each level has a minimum verbosity counter at which it becomes
// visible; ERROR, CRITICAL and WARNING are always visible.
//
// Record objects are pooled via sync.Pool to keep the emit path
// allocation-light. Callers get a Record with GetRecord and must return it
// with PutRecord once the line has been written.
package core
