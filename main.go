// Idiomatic entrypoint for Cobra CLI that delegates handling to the Cobra root command in cmd/root.go

package main

import (
	"github.com/ianphil/pyRoute13/cmd"
)

func main() {
	cmd.Execute()
}
