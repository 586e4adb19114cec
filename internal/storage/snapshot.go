package storage

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"positionScope/internal/model"
)

// PoolSnapshot bundles the inputs for one analysis run: optional pool
// metadata, day records (most-recent-first), and the pool's tick set.
type PoolSnapshot struct {
	Pool  model.PoolMeta      `json:"pool,omitempty"`
	Days  []model.PoolDayData `json:"days"`
	Ticks []model.PoolTick    `json:"ticks"`
}

// LoadSnapshot reads a PoolSnapshot from a single JSON file and validates any
// pool metadata it carries.
func LoadSnapshot(path string) (PoolSnapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return PoolSnapshot{}, fmt.Errorf("read snapshot: %w", err)
	}

	var snapshot PoolSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return PoolSnapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	if err := snapshot.Pool.Validate(); err != nil {
		return PoolSnapshot{}, fmt.Errorf("snapshot pool meta: %w", err)
	}

	return snapshot, nil
}

// LoadDayData reads day records from a JSONL file, one record per line.
func LoadDayData(path string) ([]model.PoolDayData, error) {
	var days []model.PoolDayData
	err := readLines(path, func(line []byte, lineNo int) error {
		var day model.PoolDayData
		if err := json.Unmarshal(line, &day); err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		days = append(days, day)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load day data: %w", err)
	}
	return days, nil
}

// LoadTicks reads tick records from a JSONL file, one record per line.
func LoadTicks(path string) ([]model.PoolTick, error) {
	var ticks []model.PoolTick
	err := readLines(path, func(line []byte, lineNo int) error {
		var tick model.PoolTick
		if err := json.Unmarshal(line, &tick); err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		ticks = append(ticks, tick)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load ticks: %w", err)
	}
	return ticks, nil
}

func readLines(path string, handle func(line []byte, lineNo int) error) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		if err := handle(line, lineNo); err != nil {
			return err
		}
	}
	return scanner.Err()
}
