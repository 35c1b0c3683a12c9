// Package fileutil holds file system permission modes for generated output.
package fileutil

import "os"

// ReadableByAll is the file permission mode for generated source code
// files intended to be read by build tools and other users.
const ReadableByAll os.FileMode = 0o644

// DirReadableByAll is the permission mode for generated output directories.
const DirReadableByAll os.FileMode = 0o755

// LogFile is the permission mode for log files opened by the CLI.
const LogFile os.FileMode = 0o600
