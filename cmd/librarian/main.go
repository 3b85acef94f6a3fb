package main

import "github.com/openshelf/circulation-ledger-go/cmd/librarian/command"

func main() {
	command.Execute()
}
