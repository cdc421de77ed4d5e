// Package geom provides a small 2D point value type along with the vector
// and size types it converts to and from.
//
// All operations take and return values. Nothing in here mutates an operand
// and nothing fails, apart from ParsePoint. Non-finite coordinates are
// carried through arithmetic as normal floating point values.
package geom
