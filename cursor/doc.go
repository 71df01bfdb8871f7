// Package cursor consumes a found path one waypoint at a time.
//
// A movement controller outside this module polls the cursor once per tick:
// it asks for the current target, moves towards it, and lets Tick decide
// whether the target has been reached. Distances are measured on the ground
// plane (X/Z), so height differences between follower and waypoint are
// ignored.
//
// Two end policies exist:
//
//   - ClampAtEnd stops on the last waypoint and reports Done once it is
//     reached. Paths produced by the search packages use this policy.
//   - Cyclic wraps from the last waypoint back to the first and never
//     finishes, for patrol routes over a fixed waypoint list.
//
// A Cursor is not safe for concurrent use.
package cursor
