// cmd/spokecalc/main.go
package main

import (
	"bikecalc/internal/appshell"
	"bikecalc/internal/spokeapp"
)

func main() {
	appshell.Main(spokeapp.RunContext)
}
