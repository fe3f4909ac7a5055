package server

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/paydocs/billscan/constants"
	billspb "github.com/paydocs/billscan/gen/proto/bills/v1"
	"github.com/paydocs/billscan/internal/repository"
	"github.com/paydocs/billscan/internal/utils"
)

func (s *BillsServer) CreateDocument(ctx context.Context, req *billspb.CreateDocumentRequest) (*billspb.CreateDocumentResponse, error) {
	companyID, err := uuid.Parse(strings.TrimSpace(req.GetCompanyId()))
	if err != nil {
		s.logger.Error("invalid company_id format for create", "company_id", req.GetCompanyId(), "error", err)
		return nil, status.Error(codes.InvalidArgument, "company_id must be a UUID")
	}
	if len(req.GetFile()) == 0 {
		return nil, status.Error(codes.InvalidArgument, "file is required")
	}
	if exists, _ := s.companies.Exists(ctx, companyID); !exists {
		s.logger.Error("company not found for create", "company_id", companyID)
		return nil, status.Error(codes.InvalidArgument, "company not found")
	}

	createReq := &repository.CreateDocumentRequest{CompanyID: companyID}
	if siteID := strings.TrimSpace(req.GetSiteId()); siteID != "" {
		createReq.SiteID = &siteID
	}
	doc, err := s.docs.Create(ctx, createReq)
	if err != nil {
		return nil, toStatus(err)
	}

	contentType := req.GetContentType()
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	key := constants.ArtifactKey(companyID, doc.ID, constants.ArtifactOriginal)
	if err := s.artifacts.Put(ctx, key, req.GetFile(), contentType); err != nil {
		// The row exists but the upload does not; the sweeper will park
		// it for review if the client never retries.
		s.logger.Error("original artifact store failed", "document_id", doc.ID, "error", err)
		return nil, status.Errorf(codes.Internal, "store original: %v", err)
	}

	if err := s.trigger.Start(ctx, doc.ID); err != nil {
		s.logger.Error("trigger failed after create", "document_id", doc.ID, "error", err)
		return nil, toStatus(err)
	}

	s.logger.Info("document created", "document_id", doc.ID, "company_id", companyID, "bytes", len(req.GetFile()))
	return &billspb.CreateDocumentResponse{Document: utils.ToPBDocument(doc)}, nil
}

func (s *BillsServer) GetDocument(ctx context.Context, req *billspb.GetDocumentRequest) (*billspb.GetDocumentResponse, error) {
	documentID, err := uuid.Parse(strings.TrimSpace(req.GetDocumentId()))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "document_id must be a UUID")
	}
	companyID, err := uuid.Parse(strings.TrimSpace(req.GetCompanyId()))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "company_id must be a UUID")
	}

	doc, err := s.docs.GetByID(ctx, documentID)
	if err != nil {
		return nil, toStatus(err)
	}
	if doc.CompanyID != companyID {
		s.logger.Warn("cross-company document access denied", "document_id", documentID, "caller", companyID)
		return nil, status.Error(codes.PermissionDenied, "document belongs to another company")
	}

	resp := &billspb.GetDocumentResponse{Document: utils.ToPBDocument(doc)}
	for _, kind := range s.availableArtifacts(doc.Stage, doc.Track) {
		key := constants.ArtifactKey(companyID, documentID, kind)
		url, err := s.artifacts.SignedURL(key, s.signTTL)
		if err != nil {
			s.logger.Warn("artifact sign failed", "document_id", documentID, "kind", kind, "error", err)
			continue
		}
		resp.Artifacts = append(resp.Artifacts, &billspb.ArtifactURL{Kind: string(kind), Url: url})
	}
	return resp, nil
}

// availableArtifacts lists the artifact kinds the pipeline has had a
// chance to produce, derived from stage progress and track provenance.
func (s *BillsServer) availableArtifacts(stage string, track *string) []constants.ArtifactKind {
	kinds := []constants.ArtifactKind{constants.ArtifactOriginal}
	st := constants.DocStage(stage)
	if constants.StageAtOrAfter(st, constants.StageTemplateOCR) {
		kinds = append(kinds, constants.ArtifactScan)
	}
	if track != nil {
		switch constants.Track(*track) {
		case constants.TrackTemplate:
			kinds = append(kinds, constants.ArtifactTrackA)
		case constants.TrackLLM:
			kinds = append(kinds, constants.ArtifactTrackB)
		}
	} else if constants.StageAtOrAfter(st, constants.StageLLMNormalize) {
		kinds = append(kinds, constants.ArtifactTrackB)
	}
	return kinds
}

func (s *BillsServer) RetryDocument(ctx context.Context, req *billspb.RetryDocumentRequest) (*billspb.RetryDocumentResponse, error) {
	documentID, err := uuid.Parse(strings.TrimSpace(req.GetDocumentId()))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "document_id must be a UUID")
	}
	companyID, err := uuid.Parse(strings.TrimSpace(req.GetCompanyId()))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "company_id must be a UUID")
	}

	doc, err := s.trigger.Retry(ctx, documentID, companyID)
	if err != nil {
		return nil, toStatus(err)
	}
	return &billspb.RetryDocumentResponse{Document: utils.ToPBDocument(doc)}, nil
}
