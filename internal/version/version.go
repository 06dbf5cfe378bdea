package version

// Version is the release tag; overridden at build time via -ldflags.
var Version = "0.1.0"
