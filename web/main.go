package main

import (
	"flag"
	"log"
	"os"

	"github.com/minipNaf/ISE5785-9200-0429/web/server"
)

func main() {
	// Parse command line flags
	port := flag.Int("port", 8080, "Port to serve on")
	flag.Parse()

	// Create and start web server
	webServer := server.NewServer(*port)

	log.Printf("Ray Tracer Web Server")
	log.Printf("Visit http://localhost:%d/api/scenes for the built-in scenes", *port)

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
