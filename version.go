package lawbuddy

// Version is set at build time with -ldflags "-X github.com/a-h/lawbuddy.Version=...".
var Version = "dev"
