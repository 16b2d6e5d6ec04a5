package stores

import (
	"os"

	"elevated-studio/core"
	"elevated-studio/stores/aws"
	"elevated-studio/stores/bolt"
	"elevated-studio/stores/filesystem"
	"elevated-studio/stores/memory"
	"elevated-studio/stores/sqlite"

	"github.com/sirupsen/logrus"
)

// GetStore picks the snapshot backend from STORAGE_TYPE. With nothing
// configured the collections live in memory only and vanish on restart.
func GetStore() core.SnapshotStore {
	storageType := os.Getenv("STORAGE_TYPE")
	var store core.SnapshotStore

	storageField := logrus.Fields{
		"storageType": storageType,
	}

	switch storageType {
	case "filesystem":
		basePath := os.Getenv("LOCAL_STORAGE_PATH")
		if basePath == "" {
			basePath = "./data" // Default path
		}
		storageField["basePath"] = basePath
		store = filesystem.NewStore(basePath)
	case "sqlite":
		dataSourceName := os.Getenv("DATA_SOURCE_NAME")
		if dataSourceName == "" {
			dataSourceName = "studio.db" // Default filename
		}
		storageField["dataSourceName"] = dataSourceName
		store = sqlite.NewStore(dataSourceName)
	case "bolt":
		path := os.Getenv("BOLT_PATH")
		if path == "" {
			path = "studio.bolt"
		}
		storageField["path"] = path
		store = bolt.NewStore(path)
	case "s3":
		bucketName := os.Getenv("S3_BUCKET_NAME")
		if bucketName == "" {
			logrus.Fatal("S3_BUCKET_NAME environment variable must be set for s3 storage type")
		}
		storageField["bucketName"] = bucketName
		store = aws.NewStore(bucketName)
	default:
		store = memory.NewStore()
		storageField["storageType"] = "in-memory"
	}
	logrus.WithFields(storageField).Info("Use storage")
	return store
}
