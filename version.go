package dropzone

import _ "embed"

// Version is the release of the dropzone module, read from the VERSION file.
//
//go:embed VERSION
var Version string
