// cmd/main.go
package main

import cmd "github.com/mwiater/varbench/cmd/varbench"

// main starts the varbench CLI application by delegating to the
// cobra root command defined in the varbench package. It does not
// take any arguments and does not return a value.
func main() {
	cmd.Execute()
}
