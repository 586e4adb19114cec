package storage

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"positionScope/internal/model"
)

// JsonlSink appends position reports to a JSONL file.
type JsonlSink struct {
	path string
	mu   sync.Mutex
}

var _ ReportSink = (*JsonlSink)(nil)

func NewJsonlSink(path string) *JsonlSink {
	return &JsonlSink{path: path}
}

// PutReports appends a batch of reports as JSON lines.
func (s *JsonlSink) PutReports(_ context.Context, reports []model.PositionReport) error {
	if len(reports) == 0 {
		return nil
	}

	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open output file: %w", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	for _, report := range reports {
		line, err := json.Marshal(report)
		if err != nil {
			return fmt.Errorf("marshal report: %w", err)
		}
		if _, err := writer.Write(line); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		if err := writer.WriteByte('\n'); err != nil {
			return fmt.Errorf("write newline: %w", err)
		}
	}

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}

	return nil
}
