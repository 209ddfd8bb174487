package main

import (
	_ "counter_billing/docs"
	"counter_billing/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Counter Billing API
// @version         1.0
// @description     Restaurant counter: menu catalog, in-progress bill and bill history.
// @description     Snapshots are kept in a key/value store (memory, DynamoDB, Redis, MongoDB or Postgres).

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
