// Package server exposes the admin state machine over gRPC.
package server

import (
	"context"

	"go.uber.org/zap"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	"github.com/devghori1264/aerophoenix/circuitd/internal/admin"
	"github.com/devghori1264/aerophoenix/circuitd/internal/proto"
)

// ErrorDomain tags the ErrorInfo detail attached to refused requests.
const ErrorDomain = "circuitd.admin"

// Server implements the admin gRPC service.
type Server struct {
	proto.UnimplementedAdminServiceServer
	sm  *admin.StateMachine
	log *zap.Logger
}

func New(sm *admin.StateMachine, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{sm: sm, log: log}
}

// RegisterGRPC registers the gRPC handlers and the reflection service, so
// generic clients such as grpcurl can discover the schema.
func (s *Server) RegisterGRPC(gs *grpc.Server) {
	proto.RegisterAdminServiceServer(gs, s)
	reflection.Register(gs)
}

func (s *Server) Ping(ctx context.Context, req *proto.PingRequest) (*proto.PingResponse, error) {
	return &proto.PingResponse{Msg: "pong from " + s.sm.NodeID()}, nil
}

// SubmitPayload applies a signed circuit management payload.
func (s *Server) SubmitPayload(ctx context.Context, req *proto.CircuitManagementPayload) (*proto.SubmitResponse, error) {
	res, err := s.sm.Submit(ctx, req)
	if err != nil {
		return nil, StatusError(err)
	}
	return &proto.SubmitResponse{CircuitId: res.CircuitID, Status: string(res.Status)}, nil
}

func (s *Server) GetCircuit(ctx context.Context, req *proto.GetCircuitRequest) (*proto.CircuitResponse, error) {
	if req.GetCircuitId() == "" {
		return nil, status.Error(codes.InvalidArgument, "circuit id required")
	}
	c, err := s.sm.Circuit(ctx, req.GetCircuitId())
	if err != nil {
		return nil, StatusError(err)
	}
	return &proto.CircuitResponse{Circuit: proto.CircuitToProto(c)}, nil
}

func (s *Server) ListCircuits(ctx context.Context, req *proto.ListCircuitsRequest) (*proto.ListCircuitsResponse, error) {
	circuits, pg, err := s.sm.ListCircuits(ctx, admin.CircuitFilter{
		Member: req.GetFilter(),
		Offset: int(req.GetOffset()),
		Limit:  int(req.GetLimit()),
	})
	if err != nil {
		return nil, StatusError(err)
	}
	res := &proto.ListCircuitsResponse{
		Paging: &proto.Paging{
			Offset:     uint32(pg.Offset),
			Limit:      uint32(pg.Limit),
			Total:      uint32(pg.Total),
			PrevOffset: uint32(pg.PrevOffset),
			NextOffset: uint32(pg.NextOffset),
			LastOffset: uint32(pg.LastOffset),
		},
	}
	for _, c := range circuits {
		res.Circuits = append(res.Circuits, proto.CircuitToProto(c))
	}
	return res, nil
}

func (s *Server) ListProposals(ctx context.Context, req *proto.ListProposalsRequest) (*proto.ListProposalsResponse, error) {
	props, err := s.sm.ListProposals(ctx, req.GetFilter())
	if err != nil {
		return nil, StatusError(err)
	}
	res := &proto.ListProposalsResponse{}
	for _, p := range props {
		res.Proposals = append(res.Proposals, proto.ProposalToProto(p))
	}
	return res, nil
}

var kindCodes = map[string]codes.Code{
	"MalformedPayload":      codes.InvalidArgument,
	"InvalidCircuit":        codes.InvalidArgument,
	"InvalidSignature":      codes.Unauthenticated,
	"UnauthorizedRequester": codes.PermissionDenied,
	"ProposalAlreadyExists": codes.AlreadyExists,
	"CircuitExists":         codes.AlreadyExists,
	"UnknownProposal":       codes.NotFound,
	"UnknownCircuit":        codes.NotFound,
	"HashMismatch":          codes.FailedPrecondition,
	"MemberInUse":           codes.FailedPrecondition,
	"CircuitInactive":       codes.FailedPrecondition,
	"StorageFailure":        codes.Unavailable,
	"DisseminationFailure":  codes.Unavailable,
}

// StatusError converts an admin error into a gRPC status carrying the error
// kind as an ErrorInfo reason.
func StatusError(err error) error {
	kind := admin.KindName(err)
	code, ok := kindCodes[kind]
	if !ok {
		code = codes.Internal
	}
	st := status.New(code, err.Error())
	if withInfo, derr := st.WithDetails(&errdetails.ErrorInfo{Reason: kind, Domain: ErrorDomain}); derr == nil {
		st = withInfo
	}
	return st.Err()
}

// KindFromStatus recovers the admin error kind from a status returned by
// StatusError, or "" if there is none.
func KindFromStatus(err error) string {
	st, ok := status.FromError(err)
	if !ok {
		return ""
	}
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok && info.GetDomain() == ErrorDomain {
			return info.GetReason()
		}
	}
	return ""
}
