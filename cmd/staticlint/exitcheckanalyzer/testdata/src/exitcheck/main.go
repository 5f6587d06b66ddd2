package main

import (
	"fmt"
	"os"
)

type runner struct{}

func (runner) Exit(code int) {}

func helper() {
	os.Exit(2)
}

func main() {
	fmt.Println("start")
	runner{}.Exit(1)
	defer helper()
	os.Exit(1) // want "os.Exit is not allowed in main package"
}
