package adapter

import (
	"bytes"
	"fmt"

	m "github.com/mouse-blink/almanac/internal/model"
)

// ReportStore persists and retrieves solve reports. The format follows the
// file extension (.json, .yaml/.yml or .toml).
type ReportStore interface {
	SaveReport(path m.Path, report m.Report) error
	LoadReport(path m.Path) (m.Report, error)
}

type reportStore struct {
	fs AlmanacFSAdapter
}

// NewReportStore constructs a ReportStore writing through fs.
func NewReportStore(fs AlmanacFSAdapter) ReportStore {
	return &reportStore{fs: fs}
}

func (rs *reportStore) SaveReport(path m.Path, report m.Report) error {
	format, err := FormatFromPath(string(path))
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := Encode(&buf, format, report); err != nil {
		return err
	}

	if err := rs.fs.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}

	return nil
}

func (rs *reportStore) LoadReport(path m.Path) (m.Report, error) {
	format, err := FormatFromPath(string(path))
	if err != nil {
		return m.Report{}, err
	}

	f, err := rs.fs.Open(path)
	if err != nil {
		return m.Report{}, fmt.Errorf("failed to open report %s: %w", path, err)
	}

	defer func() { _ = f.Close() }()

	var report m.Report
	if err := Decode(f, format, &report); err != nil {
		return m.Report{}, err
	}

	return report, nil
}
