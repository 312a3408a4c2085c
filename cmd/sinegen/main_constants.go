package main

const appName = "sinegen"

// Default command-line flag values
const (
	defaultChannels = 2  // Matches the default generator configuration
	defaultBits     = 16 // Matches the default generator configuration
)

// Report formatting
const (
	radiansToDegrees = 180.0
)
