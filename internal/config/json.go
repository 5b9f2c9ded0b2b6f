package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/tidwall/jsonc"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags. Durations
// accept Go duration strings ("15s") or nanoseconds.
type StructuredJSONConfig struct {
	Relay struct {
		ServerAddress     string   `json:"server_address"`
		RoomID            string   `json:"room_id"`
		Secret            string   `json:"secret"`
		RequestTimeout    Duration `json:"request_timeout"`
		AttachmentTimeout Duration `json:"attachment_timeout"`
	} `json:"relay,omitempty"`

	Upload   JSONDirection `json:"upload,omitempty"`
	Download JSONDirection `json:"download,omitempty"`

	Storage struct {
		SyncDir string `json:"sync_dir"`
	} `json:"storage,omitempty"`

	Workers struct {
		ClipboardPollInterval Duration `json:"clipboard_poll_interval"`
	} `json:"workers,omitempty"`

	Paste struct {
		Command string `json:"command"`
	} `json:"paste,omitempty"`

	Log struct {
		Level string `json:"level"`
		File  string `json:"file"`
	} `json:"log,omitempty"`
}

// JSONDirection is the JSON form of [Direction].
type JSONDirection struct {
	Enabled   *bool    `json:"enabled"`
	Types     []string `json:"types"`
	MaxSizeMB *int64   `json:"max_size_mb"`
	Tooltip   *bool    `json:"tooltip"`
}

func (d JSONDirection) direction() Direction {
	return Direction{
		Enabled:   d.Enabled,
		Types:     d.Types,
		MaxSizeMB: d.MaxSizeMB,
		Tooltip:   d.Tooltip,
	}
}

// parseJSON reads the config file. Comments and trailing commas are
// allowed.
func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	data, err := os.ReadFile(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}

	var jsonCfg StructuredJSONConfig
	if err = json.Unmarshal(jsonc.ToJSON(data), &jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Relay: Relay{
			ServerAddress:     jsonCfg.Relay.ServerAddress,
			RoomID:            jsonCfg.Relay.RoomID,
			Secret:            jsonCfg.Relay.Secret,
			RequestTimeout:    time.Duration(jsonCfg.Relay.RequestTimeout),
			AttachmentTimeout: time.Duration(jsonCfg.Relay.AttachmentTimeout),
		},
		Upload:   jsonCfg.Upload.direction(),
		Download: jsonCfg.Download.direction(),
		Storage: Storage{
			SyncDir: jsonCfg.Storage.SyncDir,
		},
		Workers: Workers{
			ClipboardPollInterval: time.Duration(jsonCfg.Workers.ClipboardPollInterval),
		},
		Paste: Paste{
			Command: jsonCfg.Paste.Command,
		},
		Log: Log{
			Level: jsonCfg.Log.Level,
			File:  jsonCfg.Log.File,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
