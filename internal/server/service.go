package server

import (
	"errors"
	"log/slog"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/paydocs/billscan/gen/ent"
	billspb "github.com/paydocs/billscan/gen/proto/bills/v1"
	"github.com/paydocs/billscan/internal/common"
	"github.com/paydocs/billscan/internal/confirm"
	"github.com/paydocs/billscan/internal/export"
	"github.com/paydocs/billscan/internal/repository"
	"github.com/paydocs/billscan/internal/storage"
	"github.com/paydocs/billscan/internal/sweep"
	"github.com/paydocs/billscan/internal/trigger"
)

// BillsServer exposes the document lifecycle over gRPC. It is a thin
// translation layer; the business rules live in the services it wraps.
type BillsServer struct {
	billspb.UnimplementedBillsServiceServer

	docs      repository.DocumentRepository
	companies repository.CompanyRepository
	artifacts storage.ArtifactStore
	trigger   *trigger.Controller
	confirm   *confirm.Service
	sweeper   *sweep.Sweeper
	exporter  *export.Service
	signTTL   time.Duration
	logger    *slog.Logger
}

func NewBillsServer(
	docs repository.DocumentRepository,
	companies repository.CompanyRepository,
	artifacts storage.ArtifactStore,
	controller *trigger.Controller,
	confirmSvc *confirm.Service,
	sweeper *sweep.Sweeper,
	exporter *export.Service,
	signTTL time.Duration,
	logger *slog.Logger,
) *BillsServer {
	if logger == nil {
		logger = slog.Default()
	}
	if signTTL <= 0 {
		signTTL = 15 * time.Minute
	}
	return &BillsServer{
		docs:      docs,
		companies: companies,
		artifacts: artifacts,
		trigger:   controller,
		confirm:   confirmSvc,
		sweeper:   sweeper,
		exporter:  exporter,
		signTTL:   signTTL,
		logger:    logger,
	}
}

// toStatus maps service-layer errors onto gRPC codes.
func toStatus(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, common.ErrUnauthorized):
		return status.Error(codes.PermissionDenied, "document belongs to another company")
	case errors.Is(err, common.ErrNotFound) || ent.IsNotFound(err):
		return status.Error(codes.NotFound, "document not found")
	case errors.Is(err, common.ErrInvalidInput):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Errorf(codes.Internal, "%v", err)
	}
}
