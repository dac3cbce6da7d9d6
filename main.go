package main

import (
	"github.com/charmbracelet/log"
)

func main() {
	if err := Run(); err != nil {
		log.Fatal(err)
	}
}
