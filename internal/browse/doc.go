// Package browse is a full-screen alternative to the line-oriented pager.
//
// It pages the same dataframe.Source with the same page arithmetic as package
// pager, but runs inside a Bubble Tea program on the alternate screen, so the
// reader can move backwards as well as forwards. Pages are laid out from row
// 0 in steps of the page height, which keeps forward and backward movement
// free of overlaps and gaps.
//
// The page height comes from the initial terminal probe. A window-size
// message only sets it when no probe result was available.
package browse
