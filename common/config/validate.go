package config

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

func validate(c *MainRepoConfig) error {
	switch c.Database.Type {
	case DatabaseTypePostgres, DatabaseTypeMemory:
	case "":
		c.Database.Type = DatabaseTypePostgres
	default:
		return fmt.Errorf("unknown database type %q", c.Database.Type)
	}
	if c.Database.Pool == nil {
		c.Database.Pool = &DbPoolConfig{MaxConnections: 25, MaxIdle: 5}
	}

	switch c.Uploads.Datastore.Type {
	case DatastoreTypeFile, DatastoreTypeS3:
	default:
		return fmt.Errorf("unknown datastore type %q", c.Uploads.Datastore.Type)
	}

	if _, err := ParseLifetime(c.Auth.TokenLifetime); err != nil {
		return err
	}
	if c.Auth.BcryptCost < 4 || c.Auth.BcryptCost > 31 {
		return fmt.Errorf("bcrypt cost %d out of range", c.Auth.BcryptCost)
	}
	if c.Auth.JwtSecret == "" {
		logrus.Warn("No JWT secret configured - a random secret will be used and sessions will not survive a restart")
	}
	if c.Uploads.NumWorkers <= 0 {
		c.Uploads.NumWorkers = 1
	}

	return nil
}
