// Package version holds the commentsweep release version.
package version

// Version is the current release. Bumped by the release process.
const Version = "0.1.0"
