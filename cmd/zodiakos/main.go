package main

import (
	"github.com/andrescamacho/zodiakos-go/internal/adapters/cli"
)

func main() {
	cli.Execute()
}
