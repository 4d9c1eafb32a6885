package main

import (
	"errors"
	"log"
	"os"

	"github.com/jessevdk/go-flags"

	"upload-cleanup/internal/config"
	"upload-cleanup/internal/exitcodes"
	"upload-cleanup/internal/fsops"
	"upload-cleanup/internal/logging"
	"upload-cleanup/internal/metrics"
	"upload-cleanup/internal/removal"
	"upload-cleanup/internal/upload"
)

type options struct {
	Config       string `short:"c" long:"config" description:"Path to configuration file"`
	MetricsFile  string `long:"metrics-file" description:"Write Prometheus textfile metrics to FILE on exit"`
	AbortOnError bool   `long:"abort-on-error" description:"Stop at the first path that fails to clean up"`
	Args         struct {
		Paths []string `positional-arg-name:"PATH" required:"1"`
	} `positional-args:"yes"`
}

// uploadHook is the part of upload.Service the command drives
type uploadHook interface {
	UploadComplete(path string) error
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = "[OPTIONS] PATH..."
	if _, err := parser.ParseArgs(args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return exitcodes.Success
		}
		return exitcodes.UsageError
	}

	cfg := config.Default()
	if opts.Config != "" {
		loaded, err := config.Load(opts.Config)
		if err != nil {
			log.Printf("ERROR: Failed to load config: %v", err)
			return exitcodes.InvalidConfig
		}
		cfg = loaded
	}
	if opts.MetricsFile != "" {
		if err := cfg.SetMetricsTextfile(opts.MetricsFile); err != nil {
			log.Printf("ERROR: --metrics-file: %v", err)
			return exitcodes.UsageError
		}
	}
	if opts.AbortOnError {
		cfg.AbortOnError = true
	}

	logger, logFile := logging.NewWithConfig(cfg)
	defer func() {
		if err := logFile.Close(); err != nil {
			log.Printf("ERROR: Failed to close log file: %v", err)
		}
	}()

	metrics.Init()
	fs := metrics.InstrumentFileSystem(fsops.OSFileSystem{})
	hook := upload.NewService(removal.NewService(fs))

	code := exitcodes.Success
	if failed := completeUploads(hook, opts.Args.Paths, cfg.AbortOnError, logger); failed > 0 {
		code = exitcodes.RuntimeError
	}

	if cfg.Metrics.TextfilePath != "" {
		if err := metrics.WriteTextfile(cfg.Metrics.TextfilePath); err != nil {
			logger.Printf("ERROR: %v", err)
			code = exitcodes.RuntimeError
		}
	}
	return code
}

// completeUploads runs the hook for every path and returns how many failed
func completeUploads(hook uploadHook, paths []string, abortOnError bool, logger *log.Logger) int {
	failed := 0
	for i, p := range paths {
		err := hook.UploadComplete(p)
		metrics.RecordUpload(err)
		if err == nil {
			logger.Printf("upload complete, source cleaned up path=%s", p)
			continue
		}

		failed++
		logger.Printf("ERROR: Failed to clean up upload source path=%s: %v", p, err)
		if abortOnError {
			if skipped := len(paths) - i - 1; skipped > 0 {
				logger.Printf("aborting, %d path(s) not processed", skipped)
			}
			break
		}
	}
	return failed
}
