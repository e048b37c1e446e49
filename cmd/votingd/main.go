package main

import "github.com/MuhKar1/Voting-dApp/cmd/votingd/cmd"

func main() {
	cmd.Execute()
}
