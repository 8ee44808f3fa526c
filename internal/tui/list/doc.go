// Package listview provides a scrolling list of fixed-height blocks for
// Bubble Tea programs.
//
// Only the blocks that fit in the viewport are rendered. The selection is
// moved with up/down (or j/k), pgup/pgdown and home/end, and the window
// follows the selection.
package listview
