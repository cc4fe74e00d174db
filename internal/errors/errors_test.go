package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/rpg-spellbook/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestErrorString() {
	s.Equal("NOT_FOUND: view not found", errors.NotFound("view not found").Error())

	wrapped := errors.Wrap(fmt.Errorf("connection refused"), "failed to load view")
	s.Equal("INTERNAL: failed to load view: connection refused", wrapped.Error())
}

func (s *ErrorsTestSuite) TestWrapPreservesCode() {
	base := errors.NotFoundf("filter view %s not found", "view_1").WithMeta("view_id", "view_1")
	wrapped := errors.Wrap(base, "failed to get view")

	s.Equal(errors.CodeNotFound, wrapped.Code)
	s.Equal("failed to get view", errors.GetMessage(wrapped))
	s.Equal("view_1", errors.GetMeta(wrapped)["view_id"])
	s.True(errors.IsNotFound(wrapped))
	s.Equal(base, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Nil(errors.Wrap(nil, "nothing"))
	s.Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "nothing"))
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	wrapped := errors.WrapWithCode(fmt.Errorf("dial tcp: timeout"), errors.CodeUnavailable, "redis unavailable")
	s.Equal(errors.CodeUnavailable, errors.GetCode(wrapped))
}

func (s *ErrorsTestSuite) TestGetCode() {
	s.Equal(errors.CodeOK, errors.GetCode(nil))
	s.Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("plain")))
	s.Equal(errors.CodeInvalidArgument, errors.GetCode(errors.InvalidArgument("bad field")))
}

func (s *ErrorsTestSuite) TestErrorIs() {
	s.True(errors.NotFound("a").Is(errors.NotFound("b")))
	s.False(errors.NotFound("a").Is(errors.InvalidArgument("a")))
}

func (s *ErrorsTestSuite) TestGRPCRoundTrip() {
	grpcErr := errors.ToGRPCError(errors.InvalidArgument("unknown column: colour"))
	st, ok := status.FromError(grpcErr)
	s.Require().True(ok)
	s.Equal(codes.InvalidArgument, st.Code())
	s.Equal("unknown column: colour", st.Message())

	back := errors.FromGRPCError(grpcErr)
	s.True(errors.IsInvalidArgument(back))
	s.Equal("unknown column: colour", errors.GetMessage(back))
}

func (s *ErrorsTestSuite) TestToGRPCErrorDefaults() {
	s.Nil(errors.ToGRPCError(nil))

	st, _ := status.FromError(errors.ToGRPCError(fmt.Errorf("boom")))
	s.Equal(codes.Internal, st.Code())

	already := status.Error(codes.NotFound, "gone")
	s.Equal(already, errors.ToGRPCError(already))
}
