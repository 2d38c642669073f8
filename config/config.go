package config

import (
	"os"
	"strings"
)

var (
	TLS_DOMAINS  = "" // e.g. "forms.example.gov,forms2.example.gov"
	MYSQL_DSN    = "" // MySQL will be used if this is set
	SQLITE_FILE  = "" // SQLite will be used if MYSQL_DSN is not configured and this is set
	BIND_ADDRESS = "0.0.0.0:8080"
	UPLOADS_DIR  = "uploads"                         // Default disk bucket for signature files (created if absent)
	TMP_DIR      = "/tmp"                            // Used as local scratch space when the uploads bucket is on S3
	SESSION_KEY  = "e1-personal-record-session-key"  // TODO: require this to be set in production deployments
	DEBUG_MODE   = true
)

func init() {
	readEnvString("TLS_DOMAINS", &TLS_DOMAINS)
	readEnvString("MYSQL_DSN", &MYSQL_DSN)
	readEnvString("SQLITE_FILE", &SQLITE_FILE)
	readEnvString("BIND_ADDRESS", &BIND_ADDRESS)
	readEnvString("UPLOADS_DIR", &UPLOADS_DIR)
	readEnvString("TMP_DIR", &TMP_DIR)
	readEnvString("SESSION_KEY", &SESSION_KEY)
	readEnvBool("DEBUG_MODE", &DEBUG_MODE)
}

func readEnvString(name string, value *string) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	*value = v
}

func readEnvBool(name string, value *bool) {
	v := strings.ToLower(os.Getenv(name))
	if v == "true" || v == "1" || v == "yes" || v == "on" {
		*value = true
	} else if v == "false" || v == "0" || v == "no" || v == "off" {
		*value = false
	}
}
