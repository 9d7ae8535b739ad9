// Package export pushes session boundary events to a Google Apps Script
// spreadsheet endpoint. The sink is fire and forget: core state never depends
// on whether a POST succeeded.
package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/zano-5702/worktime-backend-go/internal/config"
)

// BoundaryKind says which side of a session an event marks.
type BoundaryKind string

const (
	BoundaryStart BoundaryKind = "startTime"
	BoundaryStop  BoundaryKind = "stopTime"
)

// Client posts boundary events to the configured Apps Script URL.
type Client struct {
	url        string
	sheetName  string
	httpClient *http.Client
}

// NewClient creates an export client. An empty URL yields a disabled client.
func NewClient(cfg config.ExportConfig) *Client {
	return &Client{
		url:       cfg.AppsScriptURL,
		sheetName: cfg.SheetName,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Enabled reports whether a target URL is configured.
func (c *Client) Enabled() bool {
	return c.url != ""
}

type sheetConfig struct {
	PlannedWorkDayHours       int    `json:"plannedWorkDayHours"`
	FirstBreakThresholdHours  int    `json:"firstBreakThresholdHours"`
	FirstBreakMinutes         int    `json:"firstBreakMinutes"`
	SecondBreakThresholdHours int    `json:"secondBreakThresholdHours"`
	SecondBreakMinutes        int    `json:"secondBreakMinutes"`
	SheetName                 string `json:"sheetName"`
}

type boundaryPayload struct {
	Date      string      `json:"date"`
	StartTime string      `json:"startTime"`
	StopTime  string      `json:"stopTime"`
	Config    sheetConfig `json:"config"`
}

// Notify sends one boundary event. Callers that must not block on the sink
// run it in a goroutine; the returned error is for logging only.
func (c *Client) Notify(ctx context.Context, kind BoundaryKind, at time.Time) error {
	if !c.Enabled() {
		return nil
	}

	at = at.UTC()
	payload := boundaryPayload{
		Date: at.Format("2006-01-02"),
		Config: sheetConfig{
			PlannedWorkDayHours:       8,
			FirstBreakThresholdHours:  6,
			FirstBreakMinutes:         30,
			SecondBreakThresholdHours: 9,
			SecondBreakMinutes:        15,
			SheetName:                 c.sheetName,
		},
	}
	clock := at.Format("15:04:05")
	switch kind {
	case BoundaryStart:
		payload.StartTime = clock
	case BoundaryStop:
		payload.StopTime = clock
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal export payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build export request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send %s to sheet: %w", kind, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("sheet endpoint returned status %d for %s", resp.StatusCode, kind)
	}

	return nil
}

// NotifyAsync fires Notify in the background and logs failures.
func (c *Client) NotifyAsync(kind BoundaryKind, at time.Time) {
	if !c.Enabled() {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := c.Notify(ctx, kind, at); err != nil {
			slog.Error("Sheet export failed", "kind", kind, "error", err)
		}
	}()
}
