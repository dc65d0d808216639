package main

import "github.com/unionconnect/go-wallet-admin/cmd/watcher/cmd"

func main() {
	cmd.Execute()
}
