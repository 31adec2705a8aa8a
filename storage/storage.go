package storage

import (
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/t2bot/portfolio-repo/common/config"
	"github.com/t2bot/portfolio-repo/database"
)

var instance *Stores
var singletonLock = &sync.Once{}
var instanceLock = &sync.RWMutex{}

func Get() *Stores {
	instanceLock.RLock()
	s := instance
	instanceLock.RUnlock()
	if s != nil {
		return s
	}

	singletonLock.Do(func() {
		instanceLock.Lock()
		defer instanceLock.Unlock()
		instance = open()
	})

	instanceLock.RLock()
	defer instanceLock.RUnlock()
	return instance
}

func open() *Stores {
	switch config.Get().Database.Type {
	case config.DatabaseTypeMemory:
		logrus.Warn("Using the in-memory database - all content will be lost on restart")
		return NewMemoryStores()
	default:
		logrus.Info("Preparing database...")
		return NewPostgresStores(database.GetInstance())
	}
}

// Set replaces the active stores, mostly for tests and tools.
func Set(s *Stores) {
	singletonLock.Do(func() {})
	instanceLock.Lock()
	defer instanceLock.Unlock()
	instance = s
}

func Reload() {
	if config.Get().Database.Type == config.DatabaseTypePostgres {
		database.Reload()
	}
	instanceLock.Lock()
	defer instanceLock.Unlock()
	instance = open()
}
