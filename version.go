package iconlint

// Version is the library version, overridable at link time.
var Version = "0.3.0"
