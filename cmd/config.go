package cmd

import (
	"errors"
	"log/slog"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "twintrim"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	allFlagName          = "all"
	minSizeFlagName      = "min-size"
	maxSizeFlagName      = "max-size"
	fileTypeFlagName     = "file-type"
	excludeFlagName      = "exclude"
	previewFlagName      = "preview"
	exportFlagName       = "export"
	exportFormatFlagName = "export-format"
	parallelFlagName     = "parallel"
	labelColorFlagName   = "label-color"
	barColorFlagName     = "bar-color"
	logFileFlagName      = "log-file"
	verboseFlagName      = "verbose"
	noColorFlagName      = "no-color"

	minSizeConfigKey      = "scan.min_size"
	maxSizeConfigKey      = "scan.max_size"
	fileTypeConfigKey     = "scan.file_type"
	excludeConfigKey      = "scan.exclude"
	parallelConfigKey     = "scan.parallel"
	exportFormatConfigKey = "scan.export_format"
	labelColorConfigKey   = "ui.label_color"
	barColorConfigKey     = "ui.bar_color"
	noColorConfigKey      = "ui.no_color"

	defaultMinSize      = "0kb"
	defaultMaxSize      = "1gb"
	defaultExportFormat = "text"
	defaultLabelColor   = "yellow"
	defaultBarColor     = "#aaaaaa"

	envPrefix = "TWINTRIM"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = "twintrim.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(minSizeConfigKey, defaultMinSize)
	viper.SetDefault(maxSizeConfigKey, defaultMaxSize)
	viper.SetDefault(fileTypeConfigKey, "")
	viper.SetDefault(excludeConfigKey, []string{})
	viper.SetDefault(parallelConfigKey, runtime.NumCPU())
	viper.SetDefault(exportFormatConfigKey, defaultExportFormat)
	viper.SetDefault(labelColorConfigKey, defaultLabelColor)
	viper.SetDefault(barColorConfigKey, defaultBarColor)
	viper.SetDefault(noColorConfigKey, false)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return
		}

		return
	}
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger. The scan log replaces
// the original tool's duplicate_file_manager.log, with rotation on top.
//
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
