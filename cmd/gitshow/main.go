// Command gitshow reads files, directories and tags from git history.
package main

import (
	"os"

	"github.com/Akshay2350/node-git/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
