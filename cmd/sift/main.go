package main

import "sift/internal/cli"

func main() {
	cli.Execute()
}
