// Package ui implements the Bubble Tea terminal interface for balcão.
//
// The screen splits into a filter form on the left and a paginated results
// table on the right; pressing enter on a row opens a detail overlay with
// the full record grouped into sections. All fetch lifecycle state lives in
// the search.Controller — this package only translates key presses into
// controller calls and renders what the controller holds.
//
// Filter edits never hit the network. A search runs when the user submits
// the form, changes page or changes the page size, and a failed fetch keeps
// the previous results on screen with the error in the header.
package ui
