// Command instance answers GET / with a greeting naming the instance given by APP_ID.
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
	logging.L().Debug().Str("instance_id", cfg.Instance.ID).Msg("instance identifier resolved")

	router := greeting.NewRouter(greeting.InstanceGreeting(cfg.Instance.ID))
	if err := server.Run(server.New(cfg, router), "instance"); err != nil {
		logging.L().Fatal().Err(err).Msg("server failed")
	}
}
