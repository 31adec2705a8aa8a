package config

import (
	"reflect"
	"time"

	"github.com/bep/debounce"
	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
	"github.com/t2bot/portfolio-repo/common/globals"
)

func Watch() *fsnotify.Watcher {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		logrus.Fatal(err)
	}

	err = watcher.Add(Path)
	if err != nil {
		logrus.Fatal(err)
	}

	go func() {
		debounced := debounce.New(1 * time.Second)
		for {
			select {
			case _, ok := <-watcher.Events:
				if !ok {
					return
				}
				debounced(onFileChanged)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logrus.Error("error in config watcher:", err)
			}
		}
	}()

	return watcher
}

func onFileChanged() {
	logrus.Info("Config file change detected - reloading")
	configNow := Get()
	configNew, err := reloadConfig()
	if err != nil {
		logrus.Error("Error reloading configuration - ignoring")
		logrus.Error(err)
		return
	}

	logrus.Info("Applying reloaded config live")
	instance = configNew

	for _, c := range ChangedSections(configNow, configNew) {
		switch c {
		case SectionWeb:
			logrus.Warn("Webserver configuration changed - remounting")
			globals.WebReloadChan <- true
		case SectionMetrics:
			logrus.Warn("Metrics configuration changed - remounting")
			globals.MetricsReloadChan <- true
		case SectionDatabase:
			logrus.Warn("Database configuration changed - reconnecting")
			globals.DatabaseReloadChan <- true
		case SectionRedis:
			logrus.Warn("Redis configuration changed - reconnecting")
			globals.CacheReloadChan <- true
		case SectionDatastore:
			logrus.Warn("Datastore configuration changed - reloading")
			globals.DatastoreReloadChan <- true
		case SectionWorkers:
			logrus.Info("Upload worker count changed - resizing")
			globals.QueueResizeChan <- true
		case SectionLogging:
			logrus.Warn("Log configuration changed - restart the portfolio repo to apply changes")
		}
	}
}

type Section string

const (
	SectionWeb       Section = "web"
	SectionMetrics   Section = "metrics"
	SectionDatabase  Section = "database"
	SectionRedis     Section = "redis"
	SectionDatastore Section = "datastore"
	SectionWorkers   Section = "workers"
	SectionLogging   Section = "logging"
)

// ChangedSections lists the parts of the config which need live components to
// be rebuilt when going from configNow to configNew.
func ChangedSections(configNow *MainRepoConfig, configNew *MainRepoConfig) []Section {
	changed := make([]Section, 0)

	bindAddressChange := configNew.General.BindAddress != configNow.General.BindAddress
	bindPortChange := configNew.General.Port != configNow.General.Port
	forwardAddressChange := configNew.General.TrustAnyForward != configNow.General.TrustAnyForward
	forwardedHostChange := configNew.General.UseForwardedHost != configNow.General.UseForwardedHost
	corsChange := configNew.General.CorsOrigin != configNow.General.CorsOrigin
	rateLimitChange := configNew.RateLimit != configNow.RateLimit
	if bindAddressChange || bindPortChange || forwardAddressChange || forwardedHostChange || corsChange || rateLimitChange {
		changed = append(changed, SectionWeb)
	}

	if configNew.Metrics != configNow.Metrics {
		changed = append(changed, SectionMetrics)
	}

	databaseChange := configNew.Database.Type != configNow.Database.Type || configNew.Database.Postgres != configNow.Database.Postgres
	poolChange := !reflect.DeepEqual(configNew.Database.Pool, configNow.Database.Pool)
	if databaseChange || poolChange {
		changed = append(changed, SectionDatabase)
	}

	if !reflect.DeepEqual(configNew.Redis, configNow.Redis) {
		changed = append(changed, SectionRedis)
	}

	if !reflect.DeepEqual(configNew.Uploads.Datastore, configNow.Uploads.Datastore) {
		changed = append(changed, SectionDatastore)
	}

	if configNew.Uploads.NumWorkers != configNow.Uploads.NumWorkers {
		changed = append(changed, SectionWorkers)
	}

	logChange := configNew.General.LogDirectory != configNow.General.LogDirectory
	logFormatChange := configNew.General.JsonLogs != configNow.General.JsonLogs || configNew.General.LogColors != configNow.General.LogColors
	if logChange || logFormatChange || configNew.General.LogLevel != configNow.General.LogLevel {
		changed = append(changed, SectionLogging)
	}

	return changed
}
