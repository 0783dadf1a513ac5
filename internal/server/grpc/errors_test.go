package grpc

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/dmitrijs2005/eventplanner/internal/common"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/testing/protocmp"
)

func TestToStatus(t *testing.T) {
	s, _ := newTestServer(t, nil, nil)

	tests := []struct {
		name string
		err  error
		code codes.Code
		msg  string
	}{
		{"invalid credentials", common.ErrInvalidCredentials, codes.Unauthenticated, "invalid credentials"},
		{"not authenticated", fmt.Errorf("%w: %w", common.ErrNotAuthenticated, common.ErrTokenExpired), codes.Unauthenticated, "not authenticated"},
		{"user exists", common.ErrUserExists, codes.AlreadyExists, "user already exists"},
		{"not found or forbidden", common.ErrNotFoundOrForbidden, codes.NotFound, "event not found or access denied"},
		{"infrastructure", fmt.Errorf("db error: %w", errors.New("password=hunter2 host=db")), codes.Internal, "internal error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, ok := status.FromError(s.toStatus(context.Background(), "Test", tt.err))
			require.True(t, ok)
			assert.Equal(t, tt.code, st.Code())
			assert.Equal(t, tt.msg, st.Message())
		})
	}
}

func TestToStatus_ValidationDetails(t *testing.T) {
	s, _ := newTestServer(t, nil, nil)

	var v common.ValidationError
	v.Add("title", "Title is required")
	v.Add("budget", "Budget must be positive")

	st, ok := status.FromError(s.toStatus(context.Background(), "CreateEvent", &v))
	require.True(t, ok)
	assert.Equal(t, codes.InvalidArgument, st.Code())

	require.Len(t, st.Details(), 1)
	br, ok := st.Details()[0].(*errdetails.BadRequest)
	require.True(t, ok)

	want := &errdetails.BadRequest{FieldViolations: []*errdetails.BadRequest_FieldViolation{
		{Field: "title", Description: "Title is required"},
		{Field: "budget", Description: "Budget must be positive"},
	}}
	if diff := cmp.Diff(want, br, protocmp.Transform()); diff != "" {
		t.Errorf("BadRequest mismatch (-want +got):\n%s", diff)
	}
}
