package main

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/agentspec/agentspec/agent"
)

const debounceDelay = 100 * time.Millisecond

func runValidate(args []string) error {
	flags := pflag.NewFlagSet("validate", pflag.ContinueOnError)
	watch := flags.Bool("watch", false,
		"keep running and re-validate when the documents change")
	registerToolFlags(flags)
	if err := flags.Parse(args); err != nil {
		return err
	}

	config, err := loadToolConfig(flags)
	if err != nil {
		return err
	}
	log, err := newLogger(config)
	if err != nil {
		return err
	}

	paths := flags.Args()
	if len(paths) == 0 {
		return fmt.Errorf("validate: no documents given")
	}

	err = validateAll(log, paths)
	if !*watch {
		return err
	}
	return watchAndValidate(log, paths)
}

// validateAll checks every document, logging one line per document,
// and reports whether any was invalid.
func validateAll(log zerolog.Logger, paths []string) error {
	invalid := 0
	for _, path := range paths {
		if err := validateDocument(path); err != nil {
			log.Error().Err(err).Str("document", path).
				Msg("invalid document")
			invalid++
			continue
		}
		log.Info().Str("document", path).Msg("valid document")
	}
	if invalid > 0 {
		return fmt.Errorf("validate: %v of %v documents invalid", invalid,
			len(paths))
	}
	return nil
}

func validateDocument(path string) error {
	config, err := agent.FromFile(path)
	if err != nil {
		return err
	}
	return config.Validate()
}

// watchAndValidate re-validates the documents whenever one of them is
// written, until interrupted. Editors often fire several events per
// save, so validation runs behind a short debounce.
func watchAndValidate(log zerolog.Logger, paths []string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %v", err)
	}
	defer watcher.Close()

	for _, path := range paths {
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("watch %v: %v", path, err)
		}
	}
	log.Info().Int("documents", len(paths)).Msg("watching for changes")

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)

	var debounce *time.Timer
	for {
		select {
		case <-interrupt:
			if debounce != nil {
				debounce.Stop()
			}
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				if debounce != nil {
					debounce.Stop()
				}
				debounce = time.AfterFunc(debounceDelay, func() {
					if err := validateAll(log, paths); err != nil {
						log.Error().Err(err).Msg("validation failed")
					}
				})
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error().Err(err).Msg("watcher error")
		}
	}
}
