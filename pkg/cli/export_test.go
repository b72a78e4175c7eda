package cli

// NewApp exposes the command tree with a custom output writer for tests
var NewApp = newApp
