package main

import "github.com/GuangSTrip/BenchAnnotate/cmd"

// @title           BenchAnnotate API
// @version         1.0.0
// @description     A video question annotation API with shot-boundary detection and per-video annotation ledgers
// @contact.name    API Support
// @contact.url     https://github.com/GuangSTrip/BenchAnnotate
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /
// @schemes         http https
func main() {
	cmd.Execute()
}
