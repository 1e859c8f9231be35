package main

import (
	"github.com/checkframe/go-checkframe/pkg/cmd"
)

func main() {
	cmd.Execute()
}
