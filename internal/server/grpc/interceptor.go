package grpc

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/eventplanner/internal/common"
	pb "github.com/dmitrijs2005/eventplanner/internal/proto"
	"github.com/dmitrijs2005/eventplanner/internal/server/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const principalKey ctxKey = "principal"

// publicMethods can be called without a session token.
var publicMethods = map[string]struct{}{
	pb.EventPlanner_Register_FullMethodName: {},
	pb.EventPlanner_Login_FullMethodName:    {},
}

// authInterceptor resolves the session token of every non-public call and
// stores the principal in the context. The rejection reason is logged and
// counted but never sent to the caller.
func (s *GRPCServer) authInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if _, ok := publicMethods[info.FullMethod]; ok {
		return handler(ctx, req)
	}

	p, err := s.resolver.Resolve(tokenFromMetadata(ctx))
	if err != nil {
		reason := auth.RejectReason(err)
		s.metrics.RecordRejection(reason)
		s.logger.Warn(ctx, "request rejected", "method", info.FullMethod, "reason", reason)
		return nil, status.Error(codes.Unauthenticated, common.ErrNotAuthenticated.Error())
	}

	return handler(context.WithValue(ctx, principalKey, p), req)
}

// tokenFromMetadata reads access_token, falling back to an
// "authorization: Bearer <token>" header. Absent yields "".
func tokenFromMetadata(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}

	if values := md.Get(common.AccessTokenHeaderName); len(values) > 0 && values[0] != "" {
		return values[0]
	}

	for _, v := range md.Get(common.AuthorizationHeaderName) {
		scheme, token, found := strings.Cut(v, " ")
		if found && strings.EqualFold(scheme, "bearer") {
			return strings.TrimSpace(token)
		}
	}

	return ""
}

func principalFromContext(ctx context.Context) (auth.Principal, error) {
	p, ok := ctx.Value(principalKey).(auth.Principal)
	if !ok || p.UserID == "" {
		return auth.Principal{}, common.ErrNotAuthenticated
	}
	return p, nil
}
