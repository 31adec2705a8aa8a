package main

import (
	"github.com/t2bot/portfolio-repo/api"
	"github.com/t2bot/portfolio-repo/common/globals"
	"github.com/t2bot/portfolio-repo/common/runtime"
	"github.com/t2bot/portfolio-repo/metrics"
	"github.com/t2bot/portfolio-repo/pool"
	"github.com/t2bot/portfolio-repo/redislib"
	"github.com/t2bot/portfolio-repo/storage"
)

func setupReloads() {
	reloadOnChan(globals.WebReloadChan, api.Reload)
	reloadOnChan(globals.MetricsReloadChan, metrics.Reload)
	reloadOnChan(globals.DatabaseReloadChan, storage.Reload)
	reloadOnChan(globals.DatastoreReloadChan, runtime.LoadDatastores)
	reloadOnChan(globals.CacheReloadChan, redislib.Reconnect)
	reloadOnChan(globals.QueueResizeChan, pool.AdjustSize)
}

func stopReloads() {
	// send stop signal to reload fns
	globals.WebReloadChan <- false
	globals.MetricsReloadChan <- false
	globals.DatabaseReloadChan <- false
	globals.DatastoreReloadChan <- false
	globals.CacheReloadChan <- false
	globals.QueueResizeChan <- false
}

func reloadOnChan(reloadChan chan bool, reloadFn func()) {
	go func() {
		for {
			shouldReload := <-reloadChan
			if shouldReload {
				reloadFn()
			} else {
				return // received stop
			}
		}
	}()
}
