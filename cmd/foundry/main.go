package main

import (
	"github.com/custodia-labs/foundry-cli/internal/adapters/driving/cli"
)

func main() {
	cli.Execute()
}
