// Package command maps input lines to executors and runs them.
//
// A Registry binds each command name to an Executor. The Dispatcher parses a
// line, echoes it to the session log, looks the name up and runs the executor
// as a Task. Local executors finish before Dispatch returns; remote ones run
// on their own goroutine so the input loop keeps accepting lines. Executor
// failures come back as error values and are rendered as a single error line.
package command
