package grpcserver

import (
	"context"
	"errors"
	"log"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "spool/api/pb"
	"spool/domain/stack"
	"spool/service"
)

// Server adapts SpoolService to gRPC.
type Server struct {
	pb.UnimplementedSpoolServiceServer
	svc *service.SpoolService
}

func NewServer(svc *service.SpoolService) *Server {
	return &Server{svc: svc}
}

// -------------------- Commands --------------------

func (s *Server) Push(
	ctx context.Context,
	req *pb.PushRequest,
) (*pb.PushResponse, error) {
	seq, err := s.svc.Push(req.Payload)
	if err != nil {
		if errors.Is(err, stack.ErrArenaFull) {
			return nil, status.Error(codes.ResourceExhausted, "spool arena is full")
		}
		return nil, status.Errorf(codes.Internal, "push: %v", err)
	}

	log.Printf("[gRPC] Push bytes=%d seq=%d", len(req.Payload), seq)

	return &pb.PushResponse{Seq: seq}, nil
}

func (s *Server) Pop(
	ctx context.Context,
	req *pb.PopRequest,
) (*pb.PopResponse, error) {
	e, ok, err := s.svc.Pop()
	if err != nil {
		if errors.Is(err, stack.ErrRegistryFull) {
			return nil, status.Error(codes.ResourceExhausted, "hazard registry is full")
		}
		return nil, status.Errorf(codes.Internal, "pop: %v", err)
	}
	if !ok {
		return &pb.PopResponse{Found: false}, nil
	}

	log.Printf("[gRPC] Pop seq=%d bytes=%d", e.Seq, len(e.Payload))

	return &pb.PopResponse{
		Found:   true,
		Seq:     e.Seq,
		Payload: e.Payload,
	}, nil
}

// -------------------- Queries --------------------

func (s *Server) Stats(
	ctx context.Context,
	req *pb.StatsRequest,
) (*pb.StatsResponse, error) {
	st := s.svc.Stats()

	return &pb.StatsResponse{
		Depth:     st.Depth,
		Pushes:    st.Pushes,
		Pops:      st.Pops,
		Allocated: st.Allocated,
		Reclaimed: st.Reclaimed,
		Deferred:  st.Deferred,
	}, nil
}
