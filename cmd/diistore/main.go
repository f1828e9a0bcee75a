package main

import (
	"context"

	"diistore/cmd/diistore/commands"
)

func main() {
	commands.ExecuteContext(context.Background())
}
