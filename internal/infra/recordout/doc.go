// Package recordout writes annotation records to a stream.
//
// Every writer flushes after each record so partial results survive an
// interrupted run and downstream pipes see progress immediately.
package recordout
