// Package display keeps the state behind a row of digit slots: the current
// value, the radix it is shown in and whether the user may edit it.
//
// Nothing is drawn here. A Renderer is told which sequence to show after the
// value or radix changes, and an Acceptor decides whether a value produced by
// a user edit of one slot becomes the new value. A refused edit leaves the
// display exactly as it was.
package display
