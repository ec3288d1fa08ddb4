package experiments

import (
	"fmt"

	"monopoly/experiments/metrics"
	"monopoly/simulator"

	"github.com/rs/zerolog/log"
)

const BatchSize = 2000 // Per worker config

var workerCounts = []int{1, 2, 4, 8, 16, 32}

// RunThroughputExperiment measures batch throughput across worker counts and
// stores the results as CSV.
func RunThroughputExperiment() {
	configs := []metrics.WorkerConfig{}
	records := []metrics.BatchRecord{}

	log.Info().Msg("starting throughput experiment...")

	for i, workers := range workerCounts {
		config := metrics.WorkerConfig{ID: i + 1, Workers: workers, BatchSize: BatchSize}
		configs = append(configs, config)

		log.Info().Msgf("starting config %d of %d with %d workers...", i+1, len(workerCounts), workers)

		sim := simulator.New(simulator.WithWorkers(workers))
		result, err := sim.RunBatch(BatchSize)
		if err != nil {
			panic(fmt.Sprintf("failed to run batch: %v", err))
		}

		records = append(records, metrics.BatchRecord{
			Config:               config.ID,
			TotalSimulations:     result.TotalSimulations,
			Timeouts:             result.Timeouts,
			Draws:                result.Draws,
			AvgRounds:            result.AvgRounds,
			MostWinningStrategy:  result.MostWinningStrategy,
			ExecutionTimeSeconds: result.ExecutionTimeSeconds,
			SimulationsPerSecond: result.SimulationsPerSecond,
		})

		log.Info().Msgf("completed config %d of %d: %.0f simulations/sec", i+1, len(workerCounts), result.SimulationsPerSecond)
	}

	log.Info().Msg("completed throughput experiment")

	// Store experiment metadata and results
	writer, err := metrics.NewWriter("throughput")
	if err != nil {
		panic(fmt.Sprintf("failed to create experiment writer: %v", err))
	}

	err = writer.WriteWorkerConfigs(configs)
	if err != nil {
		panic(fmt.Sprintf("failed to store worker configs: %v", err))
	}
	log.Info().Msg("stored worker configs")

	err = writer.WriteBatchRecords(records)
	if err != nil {
		panic(fmt.Sprintf("failed to write batch records: %v", err))
	}
	log.Info().Msg("stored batch records")
}
