// Package logtail follows liftoff's own log file for the console pane.
//
// A Tail remembers how far it has read and only consumes appended bytes on
// each Poll, keeping a bounded window of complete lines. An unterminated
// final line is held back until its newline arrives. If the file shrinks the
// tail restarts from the top.
package logtail
