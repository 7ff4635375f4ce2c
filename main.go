package main

import (
	"github.com/Wirasm/axcli/cmd"

	_ "github.com/Wirasm/axcli/internal/platform/darwin"
)

func main() {
	cmd.Execute()
}
