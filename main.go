package main

import "github.com/klytics/bikemerge/cmd"

func main() {
	cmd.Execute()
}
