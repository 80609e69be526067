package admin

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/devghori1264/aerophoenix/circuitd/internal/models"
	"github.com/devghori1264/aerophoenix/circuitd/internal/storage"
)

// retry runs op with bounded exponential backoff. Domain errors stop the
// loop at once. When the retries run out the circuit is halted and the
// fatal hook fires.
func (sm *StateMachine) retry(ctx context.Context, circuitID string, op func() error) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = sm.cfg.RetryInterval
	b.MaxInterval = 20 * sm.cfg.RetryInterval
	b.MaxElapsedTime = 0
	policy := backoff.WithContext(backoff.WithMaxRetries(b, sm.cfg.StorageRetries), ctx)

	err := backoff.RetryNotify(func() error {
		err := op()
		if err != nil && permanent(err) {
			return backoff.Permanent(err)
		}
		return err
	}, policy, func(err error, wait time.Duration) {
		sm.metrics.StorageRetry()
		sm.log.Warn("storage operation failed, retrying",
			zap.String("circuit_id", circuitID),
			zap.Duration("backoff", wait),
			zap.Error(err))
	})
	if err == nil || permanent(err) {
		return err
	}
	if ctx.Err() != nil {
		return newError(ErrStorageFailure, circuitID, err)
	}
	sm.halt(circuitID, err)
	return newError(ErrStorageFailure, circuitID, err)
}

func permanent(err error) bool {
	return isAdminError(err) ||
		errors.Is(err, storage.ErrNotFound) ||
		errors.Is(err, storage.ErrProposalExists) ||
		errors.Is(err, storage.ErrMemberInUse) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}

func (sm *StateMachine) halt(circuitID string, err error) {
	sm.halted.Store(circuitID, err)
	sm.log.Error("storage retries exhausted, circuit halted", zap.String("circuit_id", circuitID), zap.Error(err))
	if sm.onFatal != nil {
		sm.onFatal(circuitID, err)
	}
}

func (sm *StateMachine) loadCircuit(ctx context.Context, circuitID string) (*models.Circuit, error) {
	var c *models.Circuit
	err := sm.retry(ctx, circuitID, func() (err error) {
		c, err = sm.circuits.Get(ctx, circuitID)
		return err
	})
	if errors.Is(err, storage.ErrNotFound) {
		return nil, newError(ErrUnknownCircuit, circuitID, nil)
	}
	return c, err
}

// currentCircuit is loadCircuit that treats an absent circuit as nil.
func (sm *StateMachine) currentCircuit(ctx context.Context, circuitID string) (*models.Circuit, error) {
	c, err := sm.loadCircuit(ctx, circuitID)
	if errors.Is(err, ErrUnknownCircuit) {
		return nil, nil
	}
	return c, err
}
