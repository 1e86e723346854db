package main

import "github.com/havrydotdev/myclass/internal/cli"

func main() {
	cli.Execute()
}
