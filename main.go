package main

import "github.com/llehouerou/kitforge/cmd"

func main() {
	cmd.Execute()
}
