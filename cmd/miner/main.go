// cmd/miner/main.go
package main

import (
	"miner/internal/appshell"
	"miner/internal/fatigueapp"
)

func main() { appshell.Main(fatigueapp.RunContext) }
