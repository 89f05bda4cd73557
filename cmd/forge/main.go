// Package main provides the Forge ML Framework CLI.
package main

import (
	"fmt"
	"os"

	"github.com/forge-ml/forge/testutil"
)

const version = "v0.0.1-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("Forge ML Framework %s\n", version)
			return
		case "devices":
			for _, d := range testutil.AllDeviceTypes() {
				fmt.Println(d)
			}
			return
		}
	}

	fmt.Println("Forge ML Framework - Tensor Test Tooling for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  devices    List available compute devices")
}
