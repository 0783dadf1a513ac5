// Package grpc is the gRPC transport of the server. It resolves the caller's
// session token once per request, hands the principal to the services and
// maps their errors to status codes.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/eventplanner/internal/logging"
	pb "github.com/dmitrijs2005/eventplanner/internal/proto"
	"github.com/dmitrijs2005/eventplanner/internal/server/auth"
	"github.com/dmitrijs2005/eventplanner/internal/server/metrics"
	"github.com/dmitrijs2005/eventplanner/internal/server/models"
	"github.com/dmitrijs2005/eventplanner/internal/server/services"
	"google.golang.org/grpc"
)

// UserService is the account side of the API; *services.UserService implements it.
type UserService interface {
	CreateUser(ctx context.Context, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*services.Session, error)
	Session(ctx context.Context, p auth.Principal) (*models.User, error)
	Logout(ctx context.Context, p auth.Principal) error
}

// EventService is the event side of the API; *services.EventService implements it.
type EventService interface {
	CreateEvent(ctx context.Context, p auth.Principal, draft models.EventDraft) (*models.Event, error)
	ListEvents(ctx context.Context, p auth.Principal) ([]*models.Event, error)
	GetEvent(ctx context.Context, p auth.Principal, id string) (*models.Event, error)
}

type GRPCServer struct {
	pb.UnimplementedEventPlannerServer
	address  string
	users    UserService
	events   EventService
	resolver *auth.Resolver
	metrics  *metrics.Metrics
	logger   logging.Logger
}

// NewGRPCServer wires the transport. m may be nil.
func NewGRPCServer(a string, l logging.Logger, us UserService, es EventService, r *auth.Resolver, m *metrics.Metrics) *GRPCServer {
	return &GRPCServer{
		address:  a,
		logger:   l.With("module", "grpc_server"),
		users:    us,
		events:   es,
		resolver: r,
		metrics:  m,
	}
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())
	return s.Serve(ctx, listen)
}

// Serve serves on lis until ctx is cancelled, then stops gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.authInterceptor))
	pb.RegisterEventPlannerServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	if err := srv.Serve(lis); err != nil {
		return err
	}

	return nil
}
