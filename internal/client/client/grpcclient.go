package client

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/eventplanner/internal/common"
	pb "github.com/dmitrijs2005/eventplanner/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.EventPlannerClient

	mu          sync.RWMutex
	accessToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

// accessTokenInterceptor attaches the stored token, if any, to outgoing calls.
func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if token := s.token(); token != "" {
		ctx = withAccessToken(ctx, token)
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

// NewEventPlannerClient connects lazily to endpointURL. Extra dial options
// are appended after the defaults; tests use them to dial over bufconn.
func NewEventPlannerClient(endpointURL string, extra ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}

	opts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.accessTokenInterceptor),
	}, extra...)

	conn, err := grpc.NewClient(endpointURL, opts...)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.client = pb.NewEventPlannerClient(conn)
	return c, nil
}

func (s *GRPCClient) token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

func (s *GRPCClient) setToken(token string) {
	s.mu.Lock()
	s.accessToken = token
	s.mu.Unlock()
}

// LoggedIn reports whether a session token is held.
func (s *GRPCClient) LoggedIn() bool {
	return s.token() != ""
}

func (s *GRPCClient) Register(ctx context.Context, email string, password []byte) error {
	_, err := s.client.Register(ctx, &pb.RegisterRequest{Email: email, Password: string(password)})
	if err != nil {
		return mapError(err)
	}
	return nil
}

// Login authenticates and keeps the returned token for later calls.
func (s *GRPCClient) Login(ctx context.Context, email string, password []byte) (*pb.LoginResponse, error) {
	resp, err := s.client.Login(ctx, &pb.LoginRequest{Email: email, Password: string(password)})
	if err != nil {
		return nil, mapError(err)
	}

	s.setToken(resp.Token)
	return resp, nil
}

// Logout tells the server and drops the local token even if the call fails.
func (s *GRPCClient) Logout(ctx context.Context) error {
	defer s.setToken("")

	if _, err := s.client.Logout(ctx, &pb.LogoutRequest{}); err != nil {
		return mapError(err)
	}
	return nil
}

func (s *GRPCClient) Session(ctx context.Context) (*pb.SessionResponse, error) {
	resp, err := s.client.Session(ctx, &pb.SessionRequest{})
	if err != nil {
		return nil, mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) ListEvents(ctx context.Context) ([]*pb.Event, error) {
	resp, err := s.client.ListEvents(ctx, &pb.ListEventsRequest{})
	if err != nil {
		return nil, mapError(err)
	}
	return resp.Events, nil
}

func (s *GRPCClient) CreateEvent(ctx context.Context, req *pb.CreateEventRequest) (*pb.Event, error) {
	resp, err := s.client.CreateEvent(ctx, req)
	if err != nil {
		return nil, mapError(err)
	}
	return resp.Event, nil
}

func (s *GRPCClient) GetEvent(ctx context.Context, id string) (*pb.Event, error) {
	resp, err := s.client.GetEvent(ctx, &pb.GetEventRequest{ID: id})
	if err != nil {
		return nil, mapError(err)
	}
	return resp.Event, nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}
