package main

import (
	"flag"

	"monopoly/config"
	"monopoly/experiments"
	"monopoly/server"
	"monopoly/simulator"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	throughput := flag.Bool("throughput", false, "run the worker throughput experiment instead of serving")
	flag.Parse()

	settings := config.Load()

	level, err := zerolog.ParseLevel(settings.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if *throughput {
		experiments.RunThroughputExperiment()
		return
	}

	options := []simulator.Option{}
	if settings.MaxWorkers > 0 {
		options = append(options, simulator.WithWorkers(settings.MaxWorkers))
	}
	if !settings.EnableParallel {
		options = append(options, simulator.WithSequential())
	}
	sim := simulator.New(options...)

	app := server.New(sim, settings)

	log.Info().Str("port", settings.Port).Msg("starting server")
	if err := app.Listen(":" + settings.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
