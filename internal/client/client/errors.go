package client

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/eventplanner/internal/common"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	ErrUnavailable        = errors.New("server unavailable")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAlreadyExists      = errors.New("user already exists")
	ErrNotFound           = errors.New("event not found")
)

// mapError converts a gRPC status into one of the package errors. Field
// violations come back as *common.ValidationError.
func mapError(err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	switch st.Code() {
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.Unauthenticated:
		if st.Message() == common.ErrInvalidCredentials.Error() {
			return ErrInvalidCredentials
		}
		return ErrUnauthorized
	case codes.AlreadyExists:
		return ErrAlreadyExists
	case codes.NotFound:
		return ErrNotFound
	case codes.InvalidArgument:
		return validationFromStatus(st)
	}

	return fmt.Errorf("server error: %s", st.Message())
}

func validationFromStatus(st *status.Status) error {
	v := &common.ValidationError{}
	for _, d := range st.Details() {
		br, ok := d.(*errdetails.BadRequest)
		if !ok {
			continue
		}
		for _, f := range br.GetFieldViolations() {
			v.Add(f.GetField(), f.GetDescription())
		}
	}
	if len(v.Fields) == 0 {
		v.Add("request", strings.TrimPrefix(st.Message(), "validation failed: "))
	}
	return v
}
