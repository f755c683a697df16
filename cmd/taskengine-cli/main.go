// Command taskengine-cli drives the task engine against a scripted,
// in-memory agent so a goal can be set and watched resolve without a
// live game connection.
package main

import "github.com/andrescamacho/taskengine-go/internal/adapters/cli"

func main() {
	cli.Execute()
}
