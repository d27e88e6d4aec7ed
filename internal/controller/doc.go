// Package controller owns the dashboard's view state and its lifecycle.
//
// A Controller holds the current snapshot, the time it was fetched, the active
// panel and a transient notification. Views never mutate that state directly;
// they call Refresh, Export and SelectPanel and observe the result through
// State or Subscribe.
//
// Concurrency: all transitions happen under one mutex, so a reader never sees
// a snapshot paired with another refresh's timestamp. The collector and the
// store run outside the lock. Overlapping refreshes are rejected with
// ErrRefreshInFlight rather than queued.
//
// Notifications expire after a fixed duration. Every Show supersedes the
// previous notification and carries a fresh token; a timer only clears the
// notification whose token it was armed with.
//
// Close ends the lifecycle: later commands return ErrClosed or do nothing.
package controller
