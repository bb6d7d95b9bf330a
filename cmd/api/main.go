package main

import (
	_ "poolworks/docs"
	"poolworks/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Pool Construction Estimator API
// @version         1.0
// @description     Chat-driven pool construction cost estimator (estimates, reports, inventory, deposits) backed by DynamoDB and Redis.
// @termsOfService  http://swagger.io/terms/

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
