package microhttp

// Version is the current library version.
const Version = "0.1.0"
