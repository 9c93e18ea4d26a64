// Package fileutil provides the file plumbing every stage output goes through:
// atomic replacement, verified copies, timestamped version names, and the
// advisory run lock that keeps two runs from writing the same artifacts.
package fileutil
