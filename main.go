package main

import "github.com/medorahq/medora_backend/cmd"

func main() {
	cmd.Execute()
}
