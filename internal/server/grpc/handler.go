package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/eventplanner/internal/common"
	pb "github.com/dmitrijs2005/eventplanner/internal/proto"
	"github.com/dmitrijs2005/eventplanner/internal/server/metrics"
	"github.com/dmitrijs2005/eventplanner/internal/server/models"
)

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {
	user, err := s.users.CreateUser(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrUserExists) {
			s.logger.Info(ctx, "registration rejected", "reason", "user_exists")
		}
		return nil, s.toStatus(ctx, "Register", err)
	}

	s.logger.Info(ctx, "user registered", "user_id", user.ID)
	return &pb.RegisterResponse{UserID: user.ID, Email: user.Email}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {
	sess, err := s.users.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			s.metrics.RecordLogin(metrics.LoginInvalidCredentials)
			s.logger.Info(ctx, "login rejected", "reason", "invalid_credentials")
		} else {
			s.metrics.RecordLogin(metrics.LoginError)
		}
		return nil, s.toStatus(ctx, "Login", err)
	}

	s.metrics.RecordLogin(metrics.LoginSuccess)
	s.logger.Info(ctx, "user logged in", "user_id", sess.UserID)
	return &pb.LoginResponse{Token: sess.Token, UserID: sess.UserID, Email: sess.Email}, nil
}

func (s *GRPCServer) Logout(ctx context.Context, req *pb.LogoutRequest) (*pb.LogoutResponse, error) {
	p, err := principalFromContext(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, "Logout", err)
	}

	if err := s.users.Logout(ctx, p); err != nil {
		return nil, s.toStatus(ctx, "Logout", err)
	}

	s.logger.Debug(ctx, "user logged out", "user_id", p.UserID)
	return &pb.LogoutResponse{}, nil
}

func (s *GRPCServer) Session(ctx context.Context, req *pb.SessionRequest) (*pb.SessionResponse, error) {
	p, err := principalFromContext(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, "Session", err)
	}

	user, err := s.users.Session(ctx, p)
	if err != nil {
		return nil, s.toStatus(ctx, "Session", err)
	}

	return &pb.SessionResponse{UserID: user.ID, Email: user.Email, Authenticated: true}, nil
}

func (s *GRPCServer) ListEvents(ctx context.Context, req *pb.ListEventsRequest) (*pb.ListEventsResponse, error) {
	p, err := principalFromContext(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, "ListEvents", err)
	}

	list, err := s.events.ListEvents(ctx, p)
	if err != nil {
		return nil, s.toStatus(ctx, "ListEvents", err)
	}

	resp := &pb.ListEventsResponse{Events: make([]*pb.Event, 0, len(list))}
	for _, e := range list {
		resp.Events = append(resp.Events, eventToPB(e))
	}
	return resp, nil
}

func (s *GRPCServer) CreateEvent(ctx context.Context, req *pb.CreateEventRequest) (*pb.CreateEventResponse, error) {
	p, err := principalFromContext(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, "CreateEvent", err)
	}

	draft, err := draftFromPB(req)
	if err != nil {
		return nil, s.toStatus(ctx, "CreateEvent", err)
	}

	e, err := s.events.CreateEvent(ctx, p, draft)
	if err != nil {
		return nil, s.toStatus(ctx, "CreateEvent", err)
	}

	s.logger.Info(ctx, "event created", "user_id", p.UserID, "event_id", e.ID)
	return &pb.CreateEventResponse{Event: eventToPB(e)}, nil
}

func (s *GRPCServer) GetEvent(ctx context.Context, req *pb.GetEventRequest) (*pb.GetEventResponse, error) {
	p, err := principalFromContext(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, "GetEvent", err)
	}

	e, err := s.events.GetEvent(ctx, p, req.ID)
	if err != nil {
		if errors.Is(err, common.ErrNotFoundOrForbidden) {
			s.metrics.RecordDenied()
			s.logger.Info(ctx, "event access denied", "user_id", p.UserID, "event_id", req.ID)
		}
		return nil, s.toStatus(ctx, "GetEvent", err)
	}

	return &pb.GetEventResponse{Event: eventToPB(e)}, nil
}

func draftFromPB(req *pb.CreateEventRequest) (models.EventDraft, error) {
	draft := models.EventDraft{
		Title:         req.Title,
		BudgetCents:   req.BudgetCents,
		Description:   req.Description,
		AttendeeCount: req.AttendeeCount,
	}

	if req.Date != "" {
		d, err := time.Parse(pb.DateLayout, req.Date)
		if err != nil {
			var v common.ValidationError
			v.Add("date", "Date must be in YYYY-MM-DD format")
			return draft, &v
		}
		draft.Date = d
	}

	return draft, nil
}

func eventToPB(e *models.Event) *pb.Event {
	out := &pb.Event{
		ID:            e.ID,
		Title:         e.Title,
		Date:          e.Date.Format(pb.DateLayout),
		BudgetCents:   e.BudgetCents,
		Description:   e.Description,
		AttendeeCount: e.AttendeeCount,
	}
	if !e.CreatedAt.IsZero() {
		out.CreatedAt = e.CreatedAt.UTC().Format(time.RFC3339)
	}
	return out
}
