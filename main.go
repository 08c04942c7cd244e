// WTF - command typo fixer
package main

import (
	"github.com/mewisme/wtf/cmd"
)

var (
	// Version is set during build via ldflags
	Version = "dev"
	// Commit is set during build via ldflags
	Commit = "unknown"
)

func main() {
	cmd.Version = Version
	cmd.Commit = Commit

	cmd.Execute()
}
