// filepath: cmd/contactgate/main.go
package main

import (
	"contactgate/internal/cli"

	// Import docs for Swagger
	_ "contactgate/docs"
)

// @title ContactGate-API
// @version 1.0.0
// @description A documented REST gateway exposing the contacts of a messaging platform.
// @contact.name ContactGate Maintainers
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey KeyAuth
// @in header
// @name Authorization
// @description Type "Key" followed by a space and the platform token.

func main() {
	// Delegate all execution to the CLI package
	cli.Execute()
}
