package main

import (
	"github.com/mchmarny/leadcalc/pkg/cli"
)

func main() {
	cli.Execute()
}
