// Package database handles the MySQL connection for the lifecycle archive.
//
// It provides a wrapper around GORM to properly configure the connection
// based on the application's configuration: URL-encoded credentials,
// connection/read/write timeouts, a small pool suited to batch writes, and
// an initial ping so a dead database surfaces at startup instead of midway
// through an archive run.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Warn("Archive database unavailable", zap.Error(err))
//	}
package database
