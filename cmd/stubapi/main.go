// Runs the development stub server locally.
package main

import (
	"flag"
	"log"

	"teamline/stubapi"
)

func main() {
	addr := flag.String("addr", "127.0.0.1:8000", "listen address")
	flag.Parse()

	srv := stubapi.New()
	log.Printf("stub API listening on http://%s/api", *addr)
	if err := srv.Serve(*addr); err != nil {
		log.Fatal("stub API failed:", err)
	}
}
