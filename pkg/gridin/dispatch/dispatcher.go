package dispatch

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/esmodel-tools/gridin-go/pkg/gridin/payload"
)

// Item is one envelope queued for submission, labelled for logging and
// failure reporting.
type Item struct {
	Name     string
	Envelope payload.Envelope
}

// Batch is one entity-type stage of the submission order.
type Batch struct {
	Stage string
	Items []Item
}

// Failure records one item that the service rejected or that failed at
// the transport level.
type Failure struct {
	Stage  string
	Name   string
	Status int
	Reason string
}

// Summary aggregates the outcome of a full dispatch run.
type Summary struct {
	Submitted int
	Failed    int
	Failures  []Failure
}

// Dispatcher submits batches to the model service strictly in the order
// given, one item at a time. Dispatch is continue-on-error: a failed item
// is recorded and logged, and submission of the remaining items proceeds.
// There is no retry and no rollback; partial completion is an accepted
// terminal outcome.
type Dispatcher struct {
	client *Client
	log    *logrus.Logger
}

// NewDispatcher creates a dispatcher over the given client.
func NewDispatcher(client *Client, log *logrus.Logger) *Dispatcher {
	return &Dispatcher{client: client, log: log}
}

// Run submits every batch in order. Within a batch, items go out in the
// order produced by parsing. Each stage fully completes before the next
// begins, so later stages can reference earlier entities by name.
func (d *Dispatcher) Run(ctx context.Context, batches []Batch) Summary {
	var summary Summary

	for _, batch := range batches {
		if len(batch.Items) == 0 {
			continue
		}
		d.log.WithFields(logrus.Fields{
			"stage": batch.Stage,
			"items": len(batch.Items),
		}).Info("dispatching stage")

		for _, item := range batch.Items {
			summary.Submitted++

			resp, err := d.client.Submit(ctx, item.Envelope)
			if err != nil {
				summary.Failed++
				summary.Failures = append(summary.Failures, Failure{
					Stage:  batch.Stage,
					Name:   item.Name,
					Reason: err.Error(),
				})
				d.log.WithFields(logrus.Fields{
					"stage": batch.Stage,
					"item":  item.Name,
				}).WithError(err).Error("submission failed")
				continue
			}

			if !resp.OK() {
				summary.Failed++
				reason := resp.Body
				if len(resp.Errors) > 0 {
					reason = resp.Errors[0]
				}
				summary.Failures = append(summary.Failures, Failure{
					Stage:  batch.Stage,
					Name:   item.Name,
					Status: resp.Status,
					Reason: reason,
				})
				d.log.WithFields(logrus.Fields{
					"stage":  batch.Stage,
					"item":   item.Name,
					"status": resp.Status,
					"errors": resp.Errors,
				}).Error("item rejected by service")
			}
		}
	}

	d.log.WithFields(logrus.Fields{
		"submitted": summary.Submitted,
		"failed":    summary.Failed,
	}).Info("dispatch complete")
	return summary
}
