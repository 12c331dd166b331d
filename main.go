package main

import (
	"log"

	"github.com/mooclabs/coursematch/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
