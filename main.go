package main

import "sports-federation-api/config"

func main() {
	config.RunServer()
}
