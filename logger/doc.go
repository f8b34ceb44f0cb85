// Package logger is a thin zerolog wrapper shared by the restree transport
// and test server. The core tree builder never logs; construction is pure.
//
//	log := logger.NewDefault("restree")
//	log.Debug("request sent", logger.Fields("method", "post", "url", url))
package logger
