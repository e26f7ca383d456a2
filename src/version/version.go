package version

// Version is the kvbackup release version. Overridden at build time via
// -ldflags "-X kvbackup/src/version.Version=...".
var Version = "0.1.0"
