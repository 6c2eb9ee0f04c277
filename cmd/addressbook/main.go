// Command addressbook is the CLI for the in-memory contact directory.
package main

import "github.com/mesh-intelligence/addressbook/internal/cli"

func main() {
	cli.Execute()
}
