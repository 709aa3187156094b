package main

import "github.com/abhi23s/productivity-tracker/cmd/grind/root"

func main() {
	root.Execute()
}
