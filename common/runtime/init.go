package runtime

import (
	"fmt"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"github.com/t2bot/portfolio-repo/common/config"
	"github.com/t2bot/portfolio-repo/common/rcontext"
	"github.com/t2bot/portfolio-repo/common/version"
	"github.com/t2bot/portfolio-repo/datastores"
	"github.com/t2bot/portfolio-repo/pool"
	"github.com/t2bot/portfolio-repo/redislib"
	"github.com/t2bot/portfolio-repo/storage"
)

func RunStartupSequence() {
	version.Print(true)
	CheckSecrets()
	LoadDatabase()
	LoadDatastores()
	LoadCache()

	logrus.Info("Starting image workers...")
	pool.Init()
}

func InitSentry() error {
	if !config.Get().Sentry.Enabled {
		return nil
	}
	logrus.Info("Setting up Sentry for debugging...")
	version.SetDefaults()
	return sentry.Init(sentry.ClientOptions{
		Dsn:         config.Get().Sentry.Dsn,
		Environment: config.Get().Sentry.Environment,
		Debug:       config.Get().Sentry.Debug,
		Release:     fmt.Sprintf("%s-%s", version.Version, version.GitCommit),
	})
}

func CheckSecrets() {
	if config.Get().Auth.AllowRegistration {
		logrus.Warn("Self-registration is enabled: anyone can create a dashboard account")
	}
}

func LoadDatabase() {
	logrus.Infof("Preparing %s database...", config.Get().Database.Type)
	storage.Get()
}

func LoadDatastores() {
	ds := datastores.Get()
	logrus.Info("Datastore:")
	logrus.Info(fmt.Sprintf("\t%s: %s", ds.Type, describeDatastore(ds)))

	datastores.ResetS3Clients()
	if err := datastores.EnsureBucketExists(rcontext.Background("startup"), ds); err != nil {
		sentry.CaptureException(err)
		logrus.Warn("\t\tBucket does not exist! ", err)
	}
}

func LoadCache() {
	redislib.Reconnect()
}

func describeDatastore(ds config.DatastoreConfig) string {
	if ds.Type == config.DatastoreTypeS3 {
		return ds.Options["endpoint"] + "/" + ds.Options["bucketName"]
	}
	return ds.Options["path"]
}
