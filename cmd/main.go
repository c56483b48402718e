package main

import (
	"log"

	_ "time/tzdata"

	"github.com/uoftclubs/clubs-backend/cmd/app"
	"github.com/uoftclubs/clubs-backend/internal/adapters/config"
	setupHTTP "github.com/uoftclubs/clubs-backend/internal/adapters/controller/http/setup"
)

func main() {
	cfg := config.Get()
	a, err := app.New(cfg)
	if err != nil {
		log.Panic(err)
	}

	setupHTTP.Setup(a)

	a.Start()
}
