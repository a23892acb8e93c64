package main

import (
	"os"

	"github.com/roger-dv/better-main/internal/bmain"
)

func main() {
	os.Exit(bmain.ParseCmdArgs())
}
