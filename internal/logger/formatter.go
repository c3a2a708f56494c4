package logger

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	colorRed    = 31
	colorYellow = 33
	colorBlue   = 36
	colorGray   = 37
)

const (
	defaultTimestampFormat = "2006-01-02 15:04:05"
)

func getColorByLevel(level logrus.Level) int {
	switch level {
	case logrus.DebugLevel, logrus.TraceLevel:
		return colorGray
	case logrus.WarnLevel:
		return colorYellow
	case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
		return colorRed
	default:
		return colorBlue
	}
}

// Formatter writes one line per entry: time, level, message, then the
// entry fields as sorted key=value pairs.
type Formatter struct {
	// DisableColor disable colors
	DisableColor bool
	// HideLogTime drops the timestamp.
	HideLogTime     bool
	TimestampFormat string
}

func (f *Formatter) Format(entry *logrus.Entry) ([]byte, error) {
	var b *bytes.Buffer
	if entry.Buffer != nil {
		b = entry.Buffer
	} else {
		b = &bytes.Buffer{}
	}

	timestampFormat := f.TimestampFormat
	if timestampFormat == "" {
		timestampFormat = defaultTimestampFormat
	}

	var line strings.Builder

	if !f.HideLogTime {
		line.WriteString(entry.Time.Format(timestampFormat))
		line.WriteByte(' ')
	}

	fmt.Fprintf(&line, "[%s] %s", strings.ToUpper(entry.Level.String()), entry.Message)

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	for _, k := range keys {
		fmt.Fprintf(&line, " %s=%v", k, entry.Data[k])
	}

	if !f.DisableColor {
		// \033[<color>m ... \033[0m
		fmt.Fprintf(b, "\033[%dm%s\033[0m", getColorByLevel(entry.Level), line.String())
	} else {
		b.WriteString(line.String())
	}

	b.WriteByte('\n')

	return b.Bytes(), nil
}
