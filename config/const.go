package config

const (
	FlagConfigPath = "config-path"
	FlagVerbosity  = "verbosity"

	DBDialectMysql   = "mysql"
	DBDialectSqlite3 = "sqlite3"
)
