// main is the entry point for the workscope CLI.
package main

import (
	"fmt"
	"os"

	"github.com/huangsam/workscope/cmd"
)

func main() {
	err := cmd.Execute()
	cmd.CloseCache()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
