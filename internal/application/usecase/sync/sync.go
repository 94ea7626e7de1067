// Package sync reconciles local custom content against the snapshot a
// deployment publishes at a well-known URL, letting a statically hosted
// site distribute owner-curated updates to all visitors.
package sync

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/nmorandeau/portfolio-os/internal/application/usecase/snapshot"
	"github.com/nmorandeau/portfolio-os/internal/domain/content"
	"github.com/nmorandeau/portfolio-os/pkg/apperror"
	"github.com/nmorandeau/portfolio-os/pkg/logger"
)

type Status string

const (
	StatusMissing  Status = "missing"
	StatusUpToDate Status = "up-to-date"
	StatusUpdated  Status = "updated"
)

type Result struct {
	Status   Status             `json:"status"`
	Snapshot *snapshot.Snapshot `json:"snapshot,omitempty"`
}

type UseCase struct {
	url       string
	client    *http.Client
	store     content.Store
	snapshots *snapshot.Service
	logger    logger.Logger
}

func NewUseCase(url string, store content.Store, snapshots *snapshot.Service, log logger.Logger) *UseCase {
	return &UseCase{
		url:       url,
		client:    &http.Client{Timeout: 30 * time.Second},
		store:     store,
		snapshots: snapshots,
		logger:    log,
	}
}

// Execute performs one sync pass. A deployment without a configured source
// URL, or one whose source answers 404, simply has no published snapshot:
// both are the "missing" steady state, not errors. Any other transport or
// server failure is returned to the caller; there is no retry here.
//
// The operation is idempotent: when the fetched version matches the last
// applied one the store is left untouched.
func (uc *UseCase) Execute(ctx context.Context) (*Result, error) {
	if uc.url == "" {
		return &Result{Status: StatusMissing}, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uc.url, nil)
	if err != nil {
		return nil, apperror.NewInternal("cannot build sync request", err)
	}
	req.Header.Set("Cache-Control", "no-store")

	resp, err := uc.client.Do(req)
	if err != nil {
		return nil, apperror.NewUpstream(fmt.Sprintf("cannot fetch %s", uc.url), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return &Result{Status: StatusMissing}, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apperror.NewUpstream(
			fmt.Sprintf("cannot fetch %s: status %d", uc.url, resp.StatusCode), nil)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperror.NewUpstream(fmt.Sprintf("cannot read %s", uc.url), err)
	}

	snap := snapshot.Normalize(body)
	if snap == nil {
		return nil, apperror.NewInvalidInput("published snapshot is not a JSON object", nil)
	}

	if uc.store.ServerVersion() == snap.Version {
		return &Result{Status: StatusUpToDate, Snapshot: snap}, nil
	}

	uc.snapshots.Apply(snap)
	uc.logger.Info("applied published snapshot", zap.String("version", snap.Version))

	return &Result{Status: StatusUpdated, Snapshot: snap}, nil
}
