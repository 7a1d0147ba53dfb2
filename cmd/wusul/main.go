package main

import (
	"os"

	"go.wusul.io/sdk/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
