// Package hud coordinates transient skill-progress notifications for a HUD overlay.
//
// A Store keeps at most one notification per skill. Updates that arrive shortly
// after a notification was created merge into it; later updates start a new one.
// The render loop calls Snapshot once per frame to obtain the visible entries with
// their opacity and display text. Expired notifications are pruned there.
//
// Lifecycle of a notification (measured from its creation):
//
//	coalescable (<= CoalesceWindow) → stale → expired (>= ExpiresAt).
//
// The Store is not safe for concurrent use. Producers on other goroutines post
// updates to an Inbox, which the render loop drains before each snapshot.
//
// Time is always passed in by the caller.
package hud
