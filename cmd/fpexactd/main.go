// Command fpexactd serves the exact-decimal HTTP endpoint.
package main

import (
	"flag"
	"log/slog"
	"net/http"
	"os"

	"github.com/db47h/fpexact/httpapi"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	srv := httpapi.NewServer(log)

	log.Info("listening", "addr", *addr)
	if err := http.ListenAndServe(*addr, srv.Handler()); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}
