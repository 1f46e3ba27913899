package main

import (
	"errors"
	"fmt"
	"os"

	"appicon/internal/config"
	"appicon/internal/icons"
	"appicon/internal/logging"

	flags "github.com/jessevdk/go-flags"
)

var BuildVersion = "dev"

func main() {
	opts, err := config.ParseOptions(os.Args[1:])
	if err != nil {
		var flagErr *flags.Error
		if errors.As(err, &flagErr) && flagErr.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stdout, err)
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := config.ValidateRequired(opts); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if opts.DumpTargets != "" {
		if err := config.SaveTargets(opts.DumpTargets, icons.TargetMap(icons.DefaultTargets())); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	os.Exit(run(opts))
}

func run(opts config.Options) int {
	logger := logging.New(opts.Debug)
	defer func() {
		_ = logger.Close()
	}()
	if opts.LogPersist {
		dir, err := logging.DefaultLogDirPath()
		if err == nil {
			var path string
			if path, err = logger.EnableFilePersistence(dir); err == nil {
				logger.Debug("persisting logs", logging.Field("path", path))
			}
		}
		if err != nil {
			logger.Warn("log persistence unavailable", logging.Field("error", err))
		}
	}
	logger.Debug("starting", logging.Field("version", BuildVersion), logging.Field("export_dir", opts.ExportDir))

	lock, err := icons.AcquireLock(opts.ExportDir)
	if err != nil {
		logger.Error("cannot lock export directory", logging.Field("error", err))
		return 1
	}
	defer func() {
		_ = lock.Release()
	}()

	base, source, err := icons.LoadBase(opts.BasePNG, opts.BaseBase64)
	if err != nil {
		logger.Error("cannot load base icon", logging.Field("error", err))
		return 1
	}
	logger.Info("loaded base icon",
		logging.Field("path", source.Path),
		logging.Field("base64", source.Base64),
		logging.Field("width", base.Width()),
		logging.Field("height", base.Height()),
	)

	targets := icons.DefaultTargets()
	if opts.TargetsFile != "" {
		table, err := config.LoadTargets(opts.TargetsFile)
		if err != nil {
			logger.Error("cannot load target table", logging.Field("error", err))
			return 1
		}
		targets = icons.TargetsFromMap(table)
	}
	genOpts := icons.Options{Targets: targets}
	if !opts.SkipICO {
		genOpts.ICOPath = icons.DefaultICOPath
	}

	report, err := icons.NewGenerator(base, opts.ExportDir, logger).Run(genOpts)
	if err != nil {
		logger.Error("icon generation failed",
			logging.Field("written", len(report.Written)),
			logging.Field("error", err),
		)
		return 1
	}
	logger.Info("icons generated",
		logging.Field("written", len(report.Written)),
		logging.Field("encoded", report.Encoded),
		logging.Field("cache_hits", report.CacheHits),
		logging.Field("ico", report.ICOPath != ""),
	)
	return 0
}
