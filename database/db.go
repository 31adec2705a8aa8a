package database

import (
	"database/sql"
	"errors"
	"sync"

	"github.com/DavidHuie/gomigrate"
	_ "github.com/lib/pq" // postgres driver
	"github.com/sirupsen/logrus"
	"github.com/t2bot/portfolio-repo/common/config"
	"github.com/t2bot/portfolio-repo/common/logging"
)

type Database struct {
	conn        *sql.DB
	WorkItems   *workItemsTableStatements
	SiteContent *siteContentTableStatements
	Users       *usersTableStatements
}

var instance *Database
var singleton = &sync.Once{}

func GetInstance() *Database {
	if instance == nil {
		singleton.Do(func() {
			if err := openDatabase(
				config.Get().Database.Postgres,
				config.Get().Database.Pool.MaxConnections,
				config.Get().Database.Pool.MaxIdle,
			); err != nil {
				logrus.Fatal("Failed to set up database: ", err)
			}
		})
	}
	return instance
}

func Reload() {
	if instance != nil {
		if err := instance.conn.Close(); err != nil {
			logrus.Error(err)
		}
	}

	instance = nil
	singleton = &sync.Once{}
	GetInstance()
}

func openDatabase(connectionString string, maxConns int, maxIdleConns int) error {
	d := &Database{}
	var err error

	if d.conn, err = sql.Open("postgres", connectionString); err != nil {
		return errors.New("error connecting to db: " + err.Error())
	}
	d.conn.SetMaxOpenConns(maxConns)
	d.conn.SetMaxIdleConns(maxIdleConns)

	if err = runMigrations(d.conn, config.Runtime.MigrationsPath); err != nil {
		return err
	}

	// Prepare the table accessors
	if d.WorkItems, err = prepareWorkItemsTables(d.conn); err != nil {
		return errors.New("failed to create work items table accessor: " + err.Error())
	}
	if d.SiteContent, err = prepareSiteContentTables(d.conn); err != nil {
		return errors.New("failed to create site content table accessor: " + err.Error())
	}
	if d.Users, err = prepareUsersTables(d.conn); err != nil {
		return errors.New("failed to create users table accessor: " + err.Error())
	}

	instance = d
	return nil
}

func runMigrations(conn *sql.DB, migrationsPath string) error {
	var migrator *gomigrate.Migrator
	var err error
	if migrator, err = gomigrate.NewMigratorWithLogger(conn, gomigrate.Postgres{}, migrationsPath, &logging.SendToDebugLogger{}); err != nil {
		return errors.New("error setting up migrator: " + err.Error())
	}
	if err = migrator.Migrate(); err != nil {
		return errors.New("error running migrations: " + err.Error())
	}
	return nil
}

// Migrate brings the schema at connectionString up to date without preparing
// any table accessors.
func Migrate(connectionString string, migrationsPath string) error {
	conn, err := sql.Open("postgres", connectionString)
	if err != nil {
		return errors.New("error connecting to db: " + err.Error())
	}
	defer conn.Close()

	if err = conn.Ping(); err != nil {
		return errors.New("error connecting to db: " + err.Error())
	}
	return runMigrations(conn, migrationsPath)
}
