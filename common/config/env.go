package config

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// LoadEnvFiles populates the process environment from dotenv files. Missing
// files are skipped and existing variables are never overwritten.
func LoadEnvFiles(files ...string) error {
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return err
		}
		if err := godotenv.Load(f); err != nil {
			return err
		}
		logrus.Info("Loaded environment file: ", f)
	}
	return nil
}

func applyEnvironment(c *MainRepoConfig) {
	if val, ok := os.LookupEnv("DATABASE_URL"); ok && val != "" {
		c.Database.Type = DatabaseTypePostgres
		c.Database.Postgres = val
	}
	if val, ok := os.LookupEnv("JWT_SECRET"); ok && val != "" {
		c.Auth.JwtSecret = val
	}
	if val, ok := os.LookupEnv("JWT_EXPIRES_IN"); ok && val != "" {
		c.Auth.TokenLifetime = val
	}
	if val, ok := os.LookupEnv("APP_URL"); ok && val != "" {
		c.General.PublicBaseUrl = strings.TrimSuffix(val, "/")
	}

	s3Options := map[string]string{
		"endpoint":      "S3_ENDPOINT",
		"bucketName":    "S3_BUCKET",
		"accessKeyId":   "S3_ACCESS_KEY_ID",
		"accessSecret":  "S3_SECRET_ACCESS_KEY",
		"region":        "S3_REGION",
		"publicBaseUrl": "S3_PUBLIC_BASE_URL",
	}
	fromEnv := make(map[string]string)
	for opt, env := range s3Options {
		if val, ok := os.LookupEnv(env); ok && val != "" {
			fromEnv[opt] = val
		}
	}
	if _, hasBucket := fromEnv["bucketName"]; hasBucket {
		if c.Uploads.Datastore.Type != DatastoreTypeS3 {
			c.Uploads.Datastore = DatastoreConfig{Type: DatastoreTypeS3, Options: make(map[string]string)}
		}
		if c.Uploads.Datastore.Options == nil {
			c.Uploads.Datastore.Options = make(map[string]string)
		}
		for k, v := range fromEnv {
			c.Uploads.Datastore.Options[k] = v
		}
	}
}
