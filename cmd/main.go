package main

import "github.com/adanyl0v/go-planner/internal/app"

func main() {
	app.InitDefaultLogger()
	app.MustReadEnv()
	app.MustInitApplicationLogger()

	app.MustInitServices()

	app.MustListenAndServeHTTP()
}
