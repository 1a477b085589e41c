// Package search implements the filter/query/pagination state machine
// behind the results view.
//
// The Controller cycles through Idle → Loading → Success/Failure for as
// long as the session lives. Three rules shape its API:
//
//   - Filter edits are local. Typing in a filter field must never cause
//     network traffic, so SetFilter and ResetFilters mutate state without
//     producing a fetch. Criteria take effect only on Submit.
//   - Page changes fetch exactly once. SetPage, NextPage, PrevPage and
//     SetPageSize each hand back a single Request for the caller to run.
//   - Failures keep stale data. A failed fetch surfaces a message but
//     leaves the previous results and total on screen.
//
// Requests carry a sequence number and Resolve discards responses older
// than the latest dispatched request. The original implementation let
// whichever response finished last overwrite the screen; this is a
// deliberate behavior change in favor of the latest user intent.
package search
