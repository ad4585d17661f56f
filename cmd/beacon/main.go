// beacon is a CLI tool for inspecting and broadcasting DNS-SD service
// advertisements described in YAML.
package main

import "os"

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
