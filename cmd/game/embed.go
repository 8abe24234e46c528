package main

import "embed"

// configFS holds the bundled physics, campaign and level files
//
//go:embed configs
var configFS embed.FS
