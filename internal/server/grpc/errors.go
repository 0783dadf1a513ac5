package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/eventplanner/internal/common"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// toStatus is the single place where service errors become status codes.
// Anything unrecognised is logged and reported as a generic internal error.
func (s *GRPCServer) toStatus(ctx context.Context, method string, err error) error {
	var verr *common.ValidationError

	switch {
	case errors.As(err, &verr):
		return validationStatus(verr)
	case errors.Is(err, common.ErrInvalidCredentials):
		return status.Error(codes.Unauthenticated, common.ErrInvalidCredentials.Error())
	case errors.Is(err, common.ErrNotAuthenticated):
		return status.Error(codes.Unauthenticated, common.ErrNotAuthenticated.Error())
	case errors.Is(err, common.ErrUserExists):
		return status.Error(codes.AlreadyExists, common.ErrUserExists.Error())
	case errors.Is(err, common.ErrNotFoundOrForbidden):
		return status.Error(codes.NotFound, common.ErrNotFoundOrForbidden.Error())
	}

	s.logger.Error(ctx, "request failed", "method", method, "error", err)
	return status.Error(codes.Internal, common.ErrorInternal.Error())
}

// validationStatus reports field errors as an InvalidArgument status with a
// BadRequest detail.
func validationStatus(verr *common.ValidationError) error {
	br := &errdetails.BadRequest{}
	for _, f := range verr.Fields {
		br.FieldViolations = append(br.FieldViolations, &errdetails.BadRequest_FieldViolation{
			Field:       f.Field,
			Description: f.Message,
		})
	}

	st, err := status.New(codes.InvalidArgument, verr.Error()).WithDetails(br)
	if err != nil {
		return status.Error(codes.InvalidArgument, verr.Error())
	}
	return st.Err()
}
