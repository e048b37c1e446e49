package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/MuhKar1/Voting-dApp/params"
)

type Config struct {
	ProgramConfig ProgramConfig `json:"program_config"`
	LogConfig     LogConfig     `json:"log_config"`
	DBConfig      DBConfig      `json:"db_config"`
	MetricsConfig MetricsConfig `json:"metrics_config"`
}

type ProgramConfig struct {
	// ProgramID is the hex identity all record addresses derive against.
	ProgramID string `json:"program_id"`
	// RecordCacheSize bounds the record store read cache.
	RecordCacheSize int `json:"record_cache_size"`
}

func (cfg *ProgramConfig) Validate() {
	if cfg.ProgramID == "" {
		cfg.ProgramID = params.DefaultProgramID
	}
	if cfg.RecordCacheSize <= 0 {
		cfg.RecordCacheSize = params.DefaultRecordCacheSize
	}
}

type LogConfig struct {
	Level string `json:"level"`
}

func (cfg *LogConfig) Validate() {
	if cfg.Level == "" {
		cfg.Level = "info"
	}
}

type DBConfig struct {
	Dialect      string `json:"dialect"`
	DBPath       string `json:"db_path"`
	Username     string `json:"username"`
	Password     string `json:"password"`
	MaxIdleConns int    `json:"max_idle_conns"`
	MaxOpenConns int    `json:"max_open_conns"`
}

func (cfg *DBConfig) Validate() {
	if cfg.Dialect != DBDialectMysql && cfg.Dialect != DBDialectSqlite3 {
		panic(fmt.Sprintf("only %s and %s supported", DBDialectMysql, DBDialectSqlite3))
	}
	if cfg.DBPath == "" {
		panic("db config is not correct")
	}
}

type MetricsConfig struct {
	Enabled  bool   `json:"enabled"`
	HTTPPort uint16 `json:"http_port"`
}

func (cfg *MetricsConfig) Validate() {
	if cfg.HTTPPort == 0 {
		cfg.HTTPPort = params.DefaultMetricsPort
	}
}

func (cfg *Config) Validate() {
	cfg.ProgramConfig.Validate()
	cfg.LogConfig.Validate()
	cfg.DBConfig.Validate()
	cfg.MetricsConfig.Validate()
}

func ParseConfigFromJson(content string) *Config {
	var config Config
	if err := json.Unmarshal([]byte(content), &config); err != nil {
		panic(err)
	}

	config.Validate()

	return &config
}

func ParseConfigFromFile(filePath string) *Config {
	bz, err := os.ReadFile(filePath)
	if err != nil {
		panic(err)
	}

	var config Config
	if err := json.Unmarshal(bz, &config); err != nil {
		panic(err)
	}

	config.Validate()

	return &config
}
