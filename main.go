// Package main is the entry point for the glslpack CLI.
package main

import "glslpack.dev/pkg/glslpack/cmd"

func main() {
	cmd.Execute()
}
