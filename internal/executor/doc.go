// Package executor runs the steps of a task. A StepExecutor performs a
// single step; a Registry maps task categories to executors; the
// TaskExecutor drives a whole task through its dependency graph,
// dispatching ready steps concurrently up to a configured bound.
package executor
