package logx

import (
	"fmt"
	"sort"
	"strings"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorGray   = "\033[90m"
	colorGreen  = "\033[32m"

	colorBoldRed = "\033[1;31m"
)

// ConsoleFormatter formats logs for console output with colors
type ConsoleFormatter struct {
	config *Config
}

// NewConsoleFormatter creates a new console formatter
func NewConsoleFormatter(config *Config) *ConsoleFormatter {
	return &ConsoleFormatter{config: config}
}

// Format formats a log entry for console output
func (f *ConsoleFormatter) Format(entry *LogEntry) ([]byte, error) {
	var builder strings.Builder

	if f.config.EnableTimestamp {
		timestamp := formatTimestamp(entry.Timestamp, f.config.TimeFormat)
		f.writeColored(&builder, timestamp, colorGray)
		builder.WriteString(" ")
	}

	f.writeColored(&builder, fmt.Sprintf("%-5s", entry.Level.String()), f.levelColor(entry.Level))
	builder.WriteString(" ")

	if entry.Module != "" {
		f.writeColored(&builder, "["+entry.Module+"]", colorCyan)
		builder.WriteString(" ")
	}

	if f.config.EnableCaller && entry.Caller != "" {
		f.writeColored(&builder, entry.Caller, colorGray)
		builder.WriteString(" ")
	}

	builder.WriteString(entry.Message)

	if len(entry.Fields) > 0 {
		keys := make([]string, 0, len(entry.Fields))
		for k := range entry.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			builder.WriteString(" ")
			f.writeColored(&builder, k+"=", colorGray)
			builder.WriteString(fmt.Sprintf("%v", entry.Fields[k]))
		}
	}

	builder.WriteString("\n")
	return []byte(builder.String()), nil
}

func (f *ConsoleFormatter) writeColored(builder *strings.Builder, s, color string) {
	if f.config.EnableColors {
		builder.WriteString(color)
		builder.WriteString(s)
		builder.WriteString(colorReset)
	} else {
		builder.WriteString(s)
	}
}

func (f *ConsoleFormatter) levelColor(level Level) string {
	switch level {
	case LevelTrace, LevelDebug:
		return colorGray
	case LevelInfo:
		return colorGreen
	case LevelWarn:
		return colorYellow
	case LevelError:
		return colorRed
	case LevelFatal:
		return colorBoldRed
	default:
		return colorReset
	}
}
