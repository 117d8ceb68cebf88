package main

import "github.com/pfrederiksen/weekender-events/internal/cli"

func main() {
	cli.Execute()
}
