package main

import "github.com/masahata/p4changelog/cmd"

func main() {
	cmd.Run()
}
