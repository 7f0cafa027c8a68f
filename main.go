package main

import "github.com/icetools/fieldlift/cmd"

func main() {
	cmd.Execute()
}
