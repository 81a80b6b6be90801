// main.go
//
// Entry point of the canesim CLI; commands are defined in cmd/.

package main

import (
	"github.com/canesim/canesim/cmd"
)

func main() {
	cmd.Execute()
}
