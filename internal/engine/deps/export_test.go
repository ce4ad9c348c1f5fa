package deps

// Ignorable exposes the header read error filter.
// This is exported for testing purposes only.
var Ignorable = ignorable
