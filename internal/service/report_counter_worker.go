package service

import (
	"encoding/json"

	"github.com/rumdien113/tiktok-api/internal/repository"
	"github.com/rumdien113/tiktok-api/internal/util"
)

// ReportCounterWorker consumes report.created events and maintains the
// denormalized report_counters table. The counter is eventually consistent
// with the reports table; the manual upsert endpoint remains available for
// reconciliation.
type ReportCounterWorker struct {
	counterRepo repository.ReportCounterRepository
	rabbitMQ    *util.RabbitMQClient
	stopChan    chan struct{}
}

func NewReportCounterWorker(
	counterRepo repository.ReportCounterRepository,
	rabbitMQ *util.RabbitMQClient,
) *ReportCounterWorker {
	return &ReportCounterWorker{
		counterRepo: counterRepo,
		rabbitMQ:    rabbitMQ,
		stopChan:    make(chan struct{}),
	}
}

// Start declares the queue and begins consuming in a goroutine.
func (w *ReportCounterWorker) Start() error {
	if w.rabbitMQ == nil {
		return nil // messaging disabled, counters stay caller-driven
	}

	channel := w.rabbitMQ.GetChannel()
	if channel == nil {
		return nil
	}

	queue, err := channel.QueueDeclare(
		util.ReportCreatedQueue,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		return err
	}

	if err := channel.QueueBind(
		queue.Name,
		util.ReportCreatedKey,
		util.ReportExchange,
		false,
		nil,
	); err != nil {
		return err
	}

	msgs, err := channel.Consume(
		queue.Name,
		"report_counter_worker",
		false, // manual ack
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return err
	}

	go func() {
		util.Sugar.Info("report counter worker started")
		for {
			select {
			case <-w.stopChan:
				util.Sugar.Info("report counter worker stopped")
				return
			case msg, ok := <-msgs:
				if !ok {
					util.Sugar.Warn("report.created queue closed")
					return
				}

				var event reportCreatedEvent
				if err := json.Unmarshal(msg.Body, &event); err != nil {
					util.Sugar.Warnw("discarding malformed report.created event", "error", err)
					msg.Nack(false, false)
					continue
				}

				if err := w.counterRepo.Increment(event.TargetType, event.TargetID); err != nil {
					util.Sugar.Errorw("failed to increment report counter",
						"target_type", event.TargetType,
						"target_id", event.TargetID,
						"error", err)
					// Requeue once through the broker; the manual upsert
					// endpoint covers persistent failures
					msg.Nack(false, !msg.Redelivered)
					continue
				}

				msg.Ack(false)
			}
		}
	}()

	return nil
}

// Stop signals the consumer goroutine to exit.
func (w *ReportCounterWorker) Stop() {
	close(w.stopChan)
}
