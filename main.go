package main

import "github.com/shouni/go-stock-exact/cmd"

func main() {
	cmd.Execute()
}
