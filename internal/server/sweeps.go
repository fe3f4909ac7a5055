package server

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	billspb "github.com/paydocs/billscan/gen/proto/bills/v1"
)

func (s *BillsServer) SweepDocuments(ctx context.Context, req *billspb.SweepDocumentsRequest) (*billspb.SweepDocumentsResponse, error) {
	var target *uuid.UUID
	if raw := strings.TrimSpace(req.GetDocumentId()); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "document_id must be a UUID")
		}
		target = &id
	}

	res, err := s.sweeper.Sweep(ctx, int(req.GetLimit()), target)
	if err != nil {
		return nil, toStatus(err)
	}

	ids := make([]string, 0, len(res.Documents))
	for _, id := range res.Documents {
		ids = append(ids, id.String())
	}
	return &billspb.SweepDocumentsResponse{
		Selected:    int32(res.Scanned),
		Processed:   int32(res.Processed),
		Failed:      int32(res.Failed),
		DocumentIds: ids,
	}, nil
}
