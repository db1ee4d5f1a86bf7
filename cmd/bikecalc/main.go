// cmd/bikecalc/main.go
package main

import (
	"bikecalc/internal/app"
	"bikecalc/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
