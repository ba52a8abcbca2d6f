package main

import "github.com/DevSymphony/biome2eslint/internal/cmd"

// Version is set by build -ldflags "-X main.Version=x.y.z"
var Version = "dev"

func main() {
	// Set version for version and mcp commands
	cmd.SetVersion(Version)

	cmd.Execute()
}
