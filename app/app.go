package app

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/MuhKar1/Voting-dApp/client"
	"github.com/MuhKar1/Voting-dApp/config"
	"github.com/MuhKar1/Voting-dApp/crypto"
	"github.com/MuhKar1/Voting-dApp/database"
	"github.com/MuhKar1/Voting-dApp/db/dao"
	"github.com/MuhKar1/Voting-dApp/db/model"
	"github.com/MuhKar1/Voting-dApp/indexer"
	"github.com/MuhKar1/Voting-dApp/metrics"
	"github.com/MuhKar1/Voting-dApp/program"
	"github.com/MuhKar1/Voting-dApp/store"
)

// App assembles the voting program, its record store, the off-chain index
// and the metric service.
type App struct {
	program       *program.Program
	client        *client.Client
	indexer       *indexer.Indexer
	metricService *metrics.MetricService
}

func NewApp(cfg *config.Config) *App {
	db, err := gorm.Open(openDialector(&cfg.DBConfig), &gorm.Config{})
	if err != nil {
		panic(fmt.Sprintf("open db error, err=%+v", err.Error()))
	}

	dbConfig, err := db.DB()
	if err != nil {
		panic(err)
	}
	dbConfig.SetMaxIdleConns(cfg.DBConfig.MaxIdleConns)
	dbConfig.SetMaxOpenConns(cfg.DBConfig.MaxOpenConns)

	model.InitPollTable(db)
	model.InitVoteTable(db)

	pollDao := dao.NewPollDao(db)
	voteDao := dao.NewVoteDao(db)
	daoManager := dao.NewDaoManager(pollDao, voteDao)

	recordStore := store.NewCache(
		store.NewDatabase(database.NewMemoryDatabase()),
		cfg.ProgramConfig.RecordCacheSize,
	)

	programID := crypto.HexToAddress(cfg.ProgramConfig.ProgramID)
	p := program.New(programID, recordStore)

	metricService := metrics.NewMetricService(cfg)

	return &App{
		program:       p,
		client:        client.New(p),
		indexer:       indexer.NewIndexer(p, daoManager, metricService),
		metricService: metricService,
	}
}

// Program exposes the transition engine.
func (a *App) Program() *program.Program {
	return a.program
}

// Client exposes the wallet-side collaborator.
func (a *App) Client() *client.Client {
	return a.client
}

// Start runs the metric listener and blocks on the event indexer.
func (a *App) Start() {
	go a.metricService.Start()
	a.indexer.IndexEventLoop()
}

// Stop tears the app down.
func (a *App) Stop() {
	a.indexer.Stop()
	a.program.Stop()
}

func openDialector(cfg *config.DBConfig) gorm.Dialector {
	switch cfg.Dialect {
	case config.DBDialectSqlite3:
		return sqlite.Open(cfg.DBPath)
	default:
		dsn := fmt.Sprintf("%s:%s@%s", cfg.Username, cfg.Password, cfg.DBPath)
		return mysql.Open(dsn)
	}
}
