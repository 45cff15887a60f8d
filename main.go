package main

import "bullprompt-backend/internal/cli"

// @title bullprompt API
// @version 1.0
// @description Local prompt library backing the browser popup.

// @host localhost:8080
// @BasePath /api/v1

func main() {
	cli.Execute()
}
