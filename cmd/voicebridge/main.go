package main

import (
	"voicebridge/cmd/voicebridge/cmd"
)

func main() {
	cmd.Execute()
}
