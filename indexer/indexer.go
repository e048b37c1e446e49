// Package indexer mirrors program events into the relational index so polls
// can be listed and inspected without scanning the record store.
// Observability only; the program never reads the index back.
package indexer

import (
	"go.uber.org/zap"

	"github.com/MuhKar1/Voting-dApp/db/dao"
	"github.com/MuhKar1/Voting-dApp/db/model"
	"github.com/MuhKar1/Voting-dApp/log"
	"github.com/MuhKar1/Voting-dApp/metrics"
	"github.com/MuhKar1/Voting-dApp/program"
)

const eventChanSize = 64

type Indexer struct {
	program       *program.Program
	daoManager    *dao.DaoManager
	metricService *metrics.MetricService
	stopCh        chan struct{}
}

func NewIndexer(p *program.Program, daoManager *dao.DaoManager, metricService *metrics.MetricService) *Indexer {
	return &Indexer{
		program:       p,
		daoManager:    daoManager,
		metricService: metricService,
		stopCh:        make(chan struct{}),
	}
}

// IndexEventLoop consumes program events until the subscriptions end or
// Stop is called. Persistence failures are logged and counted, never fatal;
// the record store stays the source of truth.
func (idx *Indexer) IndexEventLoop() {
	createdCh := make(chan program.PollCreatedEvent, eventChanSize)
	votedCh := make(chan program.VotedEvent, eventChanSize)
	closedCh := make(chan program.PollClosedEvent, eventChanSize)

	createdSub := idx.program.SubscribePollCreated(createdCh)
	votedSub := idx.program.SubscribeVoted(votedCh)
	closedSub := idx.program.SubscribePollClosed(closedCh)
	defer createdSub.Unsubscribe()
	defer votedSub.Unsubscribe()
	defer closedSub.Unsubscribe()

	for {
		select {
		case ev := <-createdCh:
			idx.handlePollCreated(ev)
		case ev := <-votedCh:
			idx.handleVoted(ev)
		case ev := <-closedCh:
			idx.handlePollClosed(ev)
		case <-createdSub.Err():
			return
		case <-votedSub.Err():
			return
		case <-closedSub.Err():
			return
		case <-idx.stopCh:
			return
		}
	}
}

// Stop terminates the event loop.
func (idx *Indexer) Stop() {
	close(idx.stopCh)
}

func (idx *Indexer) handlePollCreated(ev program.PollCreatedEvent) {
	poll, err := idx.program.Poll(ev.Poll)
	if err != nil {
		idx.metricService.IncIndexErr()
		log.Error("failed to load created poll", zap.String("poll", ev.Poll.Hex()), zap.Error(err))
		return
	}

	err = idx.daoManager.SavePoll(&model.Poll{
		Address:     ev.Poll.Hex(),
		Creator:     ev.Creator.Hex(),
		PollId:      ev.PollID,
		Question:    poll.Question,
		OptionCount: uint32(ev.OptionCount),
		IsActive:    true,
		CreatedTime: ev.Time,
	})
	if err != nil {
		idx.metricService.IncIndexErr()
		log.Error("failed to index poll", zap.String("poll", ev.Poll.Hex()), zap.Error(err))
		return
	}
	idx.metricService.IncPollsCreated()
}

func (idx *Indexer) handleVoted(ev program.VotedEvent) {
	err := idx.daoManager.SaveVote(&model.Vote{
		PollAddress: ev.Poll.Hex(),
		Voter:       ev.Voter.Hex(),
		OptionIndex: uint32(ev.OptionIndex),
		CreatedTime: ev.Time,
	})
	if err != nil {
		idx.metricService.IncIndexErr()
		log.Error("failed to index vote", zap.String("poll", ev.Poll.Hex()), zap.Error(err))
		return
	}
	idx.metricService.IncVotesCast()
}

func (idx *Indexer) handlePollClosed(ev program.PollClosedEvent) {
	if err := idx.daoManager.ClosePoll(ev.Poll.Hex(), ev.Time); err != nil {
		idx.metricService.IncIndexErr()
		log.Error("failed to index poll close", zap.String("poll", ev.Poll.Hex()), zap.Error(err))
		return
	}
	idx.metricService.IncPollsClosed()
}
