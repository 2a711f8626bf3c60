package main

import (
	"infopage/di"
	"infopage/transport/cli"
)

func main() {
	cli.Execute(cli.NewSchemaCommand(di.InitializeApp))
}
