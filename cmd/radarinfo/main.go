// Copyright (c) The openradar developers.

package main

import "github.com/openradar/go-radar/cmd"

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// main starts the radarinfo cli
func main() {
	cmd.Run(version, commit, date)
}
