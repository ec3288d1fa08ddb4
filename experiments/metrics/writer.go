package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// WorkerConfig describes one batch configuration under test.
type WorkerConfig struct {
	ID        int
	Workers   int
	BatchSize int
}

// BatchRecord is the outcome of running one batch under a WorkerConfig.
type BatchRecord struct {
	Config               int // WorkerConfig.ID
	TotalSimulations     int
	Timeouts             int
	Draws                int
	AvgRounds            float64
	MostWinningStrategy  string
	ExecutionTimeSeconds float64
	SimulationsPerSecond float64
}

type Writer struct {
	baseDir string
}

func NewWriter(name string) (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join("results", name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) WriteWorkerConfigs(configs []WorkerConfig) error {
	path := filepath.Join(w.baseDir, "worker_configs.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create worker configs file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "workers", "batch_size"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write worker configs header: %w", err)
	}

	for _, config := range configs {
		row := []string{
			strconv.Itoa(config.ID),
			strconv.Itoa(config.Workers),
			strconv.Itoa(config.BatchSize),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write worker config row: %w", err)
		}
	}

	return nil
}

func (w *Writer) WriteBatchRecords(records []BatchRecord) error {
	path := filepath.Join(w.baseDir, "batch_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create batch records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{
		"config", "total_simulations", "timeouts", "draws", "avg_rounds",
		"most_winning_strategy", "execution_time_seconds", "simulations_per_second",
	}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write batch records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.Config),
			strconv.Itoa(record.TotalSimulations),
			strconv.Itoa(record.Timeouts),
			strconv.Itoa(record.Draws),
			strconv.FormatFloat(record.AvgRounds, 'f', 2, 64),
			record.MostWinningStrategy,
			strconv.FormatFloat(record.ExecutionTimeSeconds, 'f', 4, 64),
			strconv.FormatFloat(record.SimulationsPerSecond, 'f', 1, 64),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write batch record row: %w", err)
		}
	}

	return nil
}
