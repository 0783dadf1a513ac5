package proto

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "eventplanner.EventPlanner"

// Full method names, as seen by interceptors.
const (
	EventPlanner_Register_FullMethodName    = "/" + ServiceName + "/Register"
	EventPlanner_Login_FullMethodName       = "/" + ServiceName + "/Login"
	EventPlanner_Logout_FullMethodName      = "/" + ServiceName + "/Logout"
	EventPlanner_Session_FullMethodName     = "/" + ServiceName + "/Session"
	EventPlanner_ListEvents_FullMethodName  = "/" + ServiceName + "/ListEvents"
	EventPlanner_CreateEvent_FullMethodName = "/" + ServiceName + "/CreateEvent"
	EventPlanner_GetEvent_FullMethodName    = "/" + ServiceName + "/GetEvent"
)

// EventPlannerServer is the server API for the EventPlanner service.
type EventPlannerServer interface {
	Register(context.Context, *RegisterRequest) (*RegisterResponse, error)
	Login(context.Context, *LoginRequest) (*LoginResponse, error)
	Logout(context.Context, *LogoutRequest) (*LogoutResponse, error)
	Session(context.Context, *SessionRequest) (*SessionResponse, error)
	ListEvents(context.Context, *ListEventsRequest) (*ListEventsResponse, error)
	CreateEvent(context.Context, *CreateEventRequest) (*CreateEventResponse, error)
	GetEvent(context.Context, *GetEventRequest) (*GetEventResponse, error)
}

// UnimplementedEventPlannerServer can be embedded to get forward-compatible
// implementations.
type UnimplementedEventPlannerServer struct{}

func (UnimplementedEventPlannerServer) Register(context.Context, *RegisterRequest) (*RegisterResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Register not implemented")
}
func (UnimplementedEventPlannerServer) Login(context.Context, *LoginRequest) (*LoginResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Login not implemented")
}
func (UnimplementedEventPlannerServer) Logout(context.Context, *LogoutRequest) (*LogoutResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Logout not implemented")
}
func (UnimplementedEventPlannerServer) Session(context.Context, *SessionRequest) (*SessionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Session not implemented")
}
func (UnimplementedEventPlannerServer) ListEvents(context.Context, *ListEventsRequest) (*ListEventsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListEvents not implemented")
}
func (UnimplementedEventPlannerServer) CreateEvent(context.Context, *CreateEventRequest) (*CreateEventResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateEvent not implemented")
}
func (UnimplementedEventPlannerServer) GetEvent(context.Context, *GetEventRequest) (*GetEventResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetEvent not implemented")
}

func RegisterEventPlannerServer(s grpc.ServiceRegistrar, srv EventPlannerServer) {
	s.RegisterService(&EventPlanner_ServiceDesc, srv)
}

// unaryHandler adapts a typed server method to grpc.MethodHandler.
func unaryHandler[Req any, Resp any](fullMethod string, call func(EventPlannerServer, context.Context, *Req) (*Resp, error)) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(EventPlannerServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(EventPlannerServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// EventPlanner_ServiceDesc is the grpc.ServiceDesc for the EventPlanner service.
var EventPlanner_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*EventPlannerServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Register", Handler: unaryHandler(EventPlanner_Register_FullMethodName, EventPlannerServer.Register)},
		{MethodName: "Login", Handler: unaryHandler(EventPlanner_Login_FullMethodName, EventPlannerServer.Login)},
		{MethodName: "Logout", Handler: unaryHandler(EventPlanner_Logout_FullMethodName, EventPlannerServer.Logout)},
		{MethodName: "Session", Handler: unaryHandler(EventPlanner_Session_FullMethodName, EventPlannerServer.Session)},
		{MethodName: "ListEvents", Handler: unaryHandler(EventPlanner_ListEvents_FullMethodName, EventPlannerServer.ListEvents)},
		{MethodName: "CreateEvent", Handler: unaryHandler(EventPlanner_CreateEvent_FullMethodName, EventPlannerServer.CreateEvent)},
		{MethodName: "GetEvent", Handler: unaryHandler(EventPlanner_GetEvent_FullMethodName, EventPlannerServer.GetEvent)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "eventplanner.proto",
}

// EventPlannerClient is the client API for the EventPlanner service.
type EventPlannerClient interface {
	Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*RegisterResponse, error)
	Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error)
	Logout(ctx context.Context, in *LogoutRequest, opts ...grpc.CallOption) (*LogoutResponse, error)
	Session(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*SessionResponse, error)
	ListEvents(ctx context.Context, in *ListEventsRequest, opts ...grpc.CallOption) (*ListEventsResponse, error)
	CreateEvent(ctx context.Context, in *CreateEventRequest, opts ...grpc.CallOption) (*CreateEventResponse, error)
	GetEvent(ctx context.Context, in *GetEventRequest, opts ...grpc.CallOption) (*GetEventResponse, error)
}

type eventPlannerClient struct {
	cc grpc.ClientConnInterface
}

// NewEventPlannerClient returns a client stub. Every call is sent with the
// JSON content-subtype.
func NewEventPlannerClient(cc grpc.ClientConnInterface) EventPlannerClient {
	return &eventPlannerClient{cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *eventPlannerClient) Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*RegisterResponse, error) {
	return invoke[RegisterResponse](ctx, c.cc, EventPlanner_Register_FullMethodName, in, opts)
}

func (c *eventPlannerClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error) {
	return invoke[LoginResponse](ctx, c.cc, EventPlanner_Login_FullMethodName, in, opts)
}

func (c *eventPlannerClient) Logout(ctx context.Context, in *LogoutRequest, opts ...grpc.CallOption) (*LogoutResponse, error) {
	return invoke[LogoutResponse](ctx, c.cc, EventPlanner_Logout_FullMethodName, in, opts)
}

func (c *eventPlannerClient) Session(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*SessionResponse, error) {
	return invoke[SessionResponse](ctx, c.cc, EventPlanner_Session_FullMethodName, in, opts)
}

func (c *eventPlannerClient) ListEvents(ctx context.Context, in *ListEventsRequest, opts ...grpc.CallOption) (*ListEventsResponse, error) {
	return invoke[ListEventsResponse](ctx, c.cc, EventPlanner_ListEvents_FullMethodName, in, opts)
}

func (c *eventPlannerClient) CreateEvent(ctx context.Context, in *CreateEventRequest, opts ...grpc.CallOption) (*CreateEventResponse, error) {
	return invoke[CreateEventResponse](ctx, c.cc, EventPlanner_CreateEvent_FullMethodName, in, opts)
}

func (c *eventPlannerClient) GetEvent(ctx context.Context, in *GetEventRequest, opts ...grpc.CallOption) (*GetEventResponse, error) {
	return invoke[GetEventResponse](ctx, c.cc, EventPlanner_GetEvent_FullMethodName, in, opts)
}
