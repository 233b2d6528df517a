package logger

import (
	"io"
	"os"
	"path/filepath"

	fiberLogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Init configures the process logger and returns the fiber access-log
// config, both writing to stdout and a rotated file under logDir.
func Init(logDir string, debug bool) (*fiberLogger.Config, error) {
	if err := os.MkdirAll(logDir, os.ModePerm); err != nil {
		return nil, err
	}

	appLog := &lumberjack.Logger{
		Filename:   filepath.Join(logDir, "app.log"),
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
		Compress:   true,
	}

	logrus.SetOutput(io.MultiWriter(os.Stdout, appLog))
	logrus.SetFormatter(&logrus.JSONFormatter{})
	if debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	accessLog := &lumberjack.Logger{
		Filename:   filepath.Join(logDir, "access.log"),
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
		Compress:   true,
	}

	config := &fiberLogger.Config{
		Output:     io.MultiWriter(os.Stdout, accessLog),
		Format:     "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path} | ${error}\n",
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Local",
	}

	return config, nil
}
