// Command keycrawl traverses, searches and navigates JSON, YAML and HTML
// documents from the command line.
package main

import "github.com/katalvlaran/keycrawler/cmd/keycrawl/cmd"

func main() {
	cmd.Execute()
}
