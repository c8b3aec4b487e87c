package main

import "github.com/scwatts/ecocyc-pathways/internal/cli"

func main() {
	cli.Execute()
}
