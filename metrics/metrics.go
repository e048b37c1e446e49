package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/MuhKar1/Voting-dApp/config"
	"github.com/MuhKar1/Voting-dApp/log"
)

const (
	MetricPollsCreated = "polls_created"
	MetricVotesCast    = "votes_cast"
	MetricPollsClosed  = "polls_closed"
	MetricIndexErr     = "indexer_error_count"
)

type MetricService struct {
	MetricsMap map[string]prometheus.Metric
	cfg        *config.Config
}

func NewMetricService(cfg *config.Config) *MetricService {
	ms := make(map[string]prometheus.Metric, 0)

	pollsCreatedMetric := prometheus.NewCounter(prometheus.CounterOpts{
		Name: MetricPollsCreated,
		Help: "Poll records created by the program",
	})
	ms[MetricPollsCreated] = pollsCreatedMetric
	prometheus.MustRegister(pollsCreatedMetric)

	votesCastMetric := prometheus.NewCounter(prometheus.CounterOpts{
		Name: MetricVotesCast,
		Help: "Vote receipts created by the program",
	})
	ms[MetricVotesCast] = votesCastMetric
	prometheus.MustRegister(votesCastMetric)

	pollsClosedMetric := prometheus.NewCounter(prometheus.CounterOpts{
		Name: MetricPollsClosed,
		Help: "Polls closed to further voting",
	})
	ms[MetricPollsClosed] = pollsClosedMetric
	prometheus.MustRegister(pollsClosedMetric)

	indexErrMetric := prometheus.NewCounter(prometheus.CounterOpts{
		Name: MetricIndexErr,
		Help: "Errors while persisting events to the off-chain index",
	})
	ms[MetricIndexErr] = indexErrMetric
	prometheus.MustRegister(indexErrMetric)

	return &MetricService{
		MetricsMap: ms,
		cfg:        cfg,
	}
}

func (m *MetricService) Start() {
	if !m.cfg.MetricsConfig.Enabled {
		return
	}
	http.Handle("/metrics", promhttp.Handler())
	err := http.ListenAndServe(fmt.Sprintf(":%d", m.cfg.MetricsConfig.HTTPPort), nil)
	if err != nil {
		log.Fatal("metrics listener failed", zap.Error(err))
	}
}

func (m *MetricService) IncPollsCreated() {
	m.MetricsMap[MetricPollsCreated].(prometheus.Counter).Inc()
}

func (m *MetricService) IncVotesCast() {
	m.MetricsMap[MetricVotesCast].(prometheus.Counter).Inc()
}

func (m *MetricService) IncPollsClosed() {
	m.MetricsMap[MetricPollsClosed].(prometheus.Counter).Inc()
}

func (m *MetricService) IncIndexErr() {
	m.MetricsMap[MetricIndexErr].(prometheus.Counter).Inc()
}
