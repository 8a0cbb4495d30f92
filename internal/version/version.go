package version

// Overridden at build time via -ldflags; the defaults identify a local
// development build.
var (
	Version = "dev"
	Commit  = "none"
	Date    = ""
)
