package config

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// optionalBool is a flag.Value that remembers whether it was set, so an
// unset flag does not override env or JSON values during merging.
// It implements the flag.Value interface and is a boolean flag.
type optionalBool struct {
	value *bool
}

// String returns the flag value or "" when the flag was not set.
func (b *optionalBool) String() string {
	if b == nil || b.value == nil {
		return ""
	}
	return strconv.FormatBool(*b.value)
}

// Set parses s with strconv.ParseBool.
func (b *optionalBool) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	b.value = &v
	return nil
}

// IsBoolFlag allows the flag to be passed without a value ("-upload").
func (b *optionalBool) IsBoolFlag() bool { return true }

// optionalInt64 is a flag.Value that remembers whether it was set.
type optionalInt64 struct {
	value *int64
}

func (i *optionalInt64) String() string {
	if i == nil || i.value == nil {
		return ""
	}
	return strconv.FormatInt(*i.value, 10)
}

func (i *optionalInt64) Set(s string) error {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return err
	}
	i.value = &v
	return nil
}

// typeList is a comma separated list of clipboard type names.
type typeList []string

func (l *typeList) String() string {
	if l == nil {
		return ""
	}
	return strings.Join(*l, ",")
}

func (l *typeList) Set(s string) error {
	*l = (*l)[:0]
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			*l = append(*l, part)
		}
	}
	return nil
}

// ParseFlags parses all configuration flags from args. args must not include
// the program name or the sub-command.
//
// Flags:
//
//	-s relay server address
//	-room room id
//	-secret shared room secret
//	-request-timeout metadata request timeout (e.g., "15s")
//	-attachment-timeout attachment download timeout (e.g., "1m")
//	-upload / -download enable automatic sync in a direction
//	-upload-types / -download-types comma separated clipboard types
//	-upload-max-size / -download-max-size size ceiling in MB, 0 = unlimited
//	-upload-tooltip / -download-tooltip notify about results
//	-sync-dir directory for downloaded attachments
//	-poll-interval clipboard poll interval (e.g., "500ms")
//	-paste-command command that sends the paste keystroke
//	-log-level zerolog level name
//	-log-file log file path
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("go-clip-sync", flag.ContinueOnError)

	var (
		serverAddress     string
		roomID            string
		secret            string
		requestTimeout    time.Duration
		attachmentTimeout time.Duration
		uploadEnabled     optionalBool
		downloadEnabled   optionalBool
		uploadTypes       typeList
		downloadTypes     typeList
		uploadMaxSize     optionalInt64
		downloadMaxSize   optionalInt64
		uploadTooltip     optionalBool
		downloadTooltip   optionalBool
		syncDir           string
		pollInterval      time.Duration
		pasteCommand      string
		logLevel          string
		logFile           string
		jsonConfigPath    string
	)

	fs.StringVar(&serverAddress, "s", "", "Relay server address")
	fs.StringVar(&roomID, "room", "", "Room id")
	fs.StringVar(&secret, "secret", "", "Shared room secret")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s)")
	fs.DurationVar(&attachmentTimeout, "attachment-timeout", 0, "Attachment download timeout (e.g., 1m)")
	fs.Var(&uploadEnabled, "upload", "Enable automatic upload")
	fs.Var(&downloadEnabled, "download", "Enable automatic download")
	fs.Var(&uploadTypes, "upload-types", "Clipboard types uploaded automatically (comma separated)")
	fs.Var(&downloadTypes, "download-types", "Clipboard types downloaded automatically (comma separated)")
	fs.Var(&uploadMaxSize, "upload-max-size", "Upload size ceiling in MB, 0 = unlimited")
	fs.Var(&downloadMaxSize, "download-max-size", "Download size ceiling in MB, 0 = unlimited")
	fs.Var(&uploadTooltip, "upload-tooltip", "Notify about upload results")
	fs.Var(&downloadTooltip, "download-tooltip", "Notify about download results")
	fs.StringVar(&syncDir, "sync-dir", "", "Directory for downloaded attachments")
	fs.DurationVar(&pollInterval, "poll-interval", 0, "Clipboard poll interval (e.g., 500ms)")
	fs.StringVar(&pasteCommand, "paste-command", "", "Command that sends the paste keystroke")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Relay: Relay{
			ServerAddress:     serverAddress,
			RoomID:            roomID,
			Secret:            secret,
			RequestTimeout:    requestTimeout,
			AttachmentTimeout: attachmentTimeout,
		},
		Upload: Direction{
			Enabled:   uploadEnabled.value,
			Types:     []string(uploadTypes),
			MaxSizeMB: uploadMaxSize.value,
			Tooltip:   uploadTooltip.value,
		},
		Download: Direction{
			Enabled:   downloadEnabled.value,
			Types:     []string(downloadTypes),
			MaxSizeMB: downloadMaxSize.value,
			Tooltip:   downloadTooltip.value,
		},
		Storage:      Storage{SyncDir: syncDir},
		Workers:      Workers{ClipboardPollInterval: pollInterval},
		Paste:        Paste{Command: pasteCommand},
		Log:          Log{Level: logLevel, File: logFile},
		JSONFilePath: jsonConfigPath,
	}, nil
}

