// Command nginx answers GET / with a fixed greeting for deployments behind NGINX.
package main

import (
	"os"

	"github.com/0xReLogic/greeter/internal/config"
	"github.com/0xReLogic/greeter/internal/greeting"
	"github.com/0xReLogic/greeter/internal/logging"
	"github.com/0xReLogic/greeter/internal/server"
)

func main() {
	cfg, err := config.Load(config.DefaultFile, os.LookupEnv)
	if err != nil {
		logging.L().Fatal().Err(err).Msg("failed to load configuration")
	}
	logging.Init(cfg.Logging)

	router := greeting.NewRouter(greeting.NginxGreeting)
	if err := server.Run(server.New(cfg, router), "nginx"); err != nil {
		logging.L().Fatal().Err(err).Msg("server failed")
	}
}
