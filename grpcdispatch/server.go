package grpcdispatch

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strconv"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/Tora-Build/w3cash-sdk-sub001/dispatch"
	"github.com/Tora-Build/w3cash-sdk-sub001/model"
	"github.com/Tora-Build/w3cash-sdk-sub001/registry"
)

// Server exposes a Processor and its Registry over the Dispatch and
// Admin services.
//
// Admin calls carry the caller identity as a request field; the daemon
// is expected to sit behind an authenticated channel (local socket or
// mTLS), so the identity is a routing claim checked against the
// registry owner, not a proof.
type Server struct {
	UnimplementedDispatchServer
	UnimplementedAdminServer

	Proc *dispatch.Processor
	Reg  *registry.Registry
}

func (s *Server) Execute(ctx context.Context, in *wrapperspb.BytesValue) (*structpb.Struct, error) {
	if s == nil || s.Proc == nil {
		return nil, status.Error(codes.FailedPrecondition, "missing processor")
	}
	out, err := s.Proc.Execute(ctx, in.GetValue())
	if err != nil {
		return nil, mapErr(err)
	}
	return structpb.NewStruct(map[string]any{
		"status":         out.Status.String(),
		"step":           float64(out.Step),
		"payload_digest": out.PayloadDigest.String(),
		"handle":         out.Handle.String(),
	})
}

func (s *Server) EstimateFee(ctx context.Context, in *structpb.Struct) (*wrapperspb.StringValue, error) {
	if s == nil || s.Proc == nil {
		return nil, status.Error(codes.FailedPrecondition, "missing processor")
	}
	transportID, err := fieldUint8(in, "transport_id")
	if err != nil {
		return nil, err
	}
	domainIndex, err := fieldUint8(in, "domain_index")
	if err != nil {
		return nil, err
	}
	value, err := fieldBig(in, "value")
	if err != nil {
		return nil, err
	}
	gasBudget, err := fieldUint64(in, "gas_budget")
	if err != nil {
		return nil, err
	}
	fee, err := s.Proc.EstimateFee(ctx, transportID, domainIndex, value, gasBudget)
	if err != nil {
		return nil, mapErr(err)
	}
	return wrapperspb.String(strconv.FormatUint(fee, 10)), nil
}

func (s *Server) SetEndpoint(ctx context.Context, in *structpb.Struct) (*wrapperspb.BoolValue, error) {
	if s == nil || s.Proc == nil {
		return nil, status.Error(codes.FailedPrecondition, "missing processor")
	}
	caller, err := fieldAddress(in, "caller")
	if err != nil {
		return nil, err
	}
	endpoint, err := fieldDigest(in, "endpoint")
	if err != nil {
		return nil, err
	}
	allowed := in.GetFields()["allowed"].GetBoolValue()
	if err := s.Proc.SetAuthorizedEndpoint(caller, endpoint, allowed); err != nil {
		return nil, mapErr(err)
	}
	return wrapperspb.Bool(true), nil
}

func (s *Server) SetProvider(ctx context.Context, in *structpb.Struct) (*wrapperspb.BoolValue, error) {
	caller, err := fieldAddress(in, "caller")
	if err != nil {
		return nil, err
	}
	id, err := fieldUint8(in, "id")
	if err != nil {
		return nil, err
	}
	location, err := fieldAddress(in, "location")
	if err != nil {
		return nil, err
	}
	if err := s.Reg.SetProvider(caller, id, location); err != nil {
		return nil, mapErr(err)
	}
	return wrapperspb.Bool(true), nil
}

func (s *Server) FreezeProvider(ctx context.Context, in *structpb.Struct) (*wrapperspb.BoolValue, error) {
	caller, err := fieldAddress(in, "caller")
	if err != nil {
		return nil, err
	}
	id, err := fieldUint8(in, "id")
	if err != nil {
		return nil, err
	}
	if err := s.Reg.FreezeProvider(caller, id); err != nil {
		return nil, mapErr(err)
	}
	return wrapperspb.Bool(true), nil
}

func (s *Server) SetDomain(ctx context.Context, in *structpb.Struct) (*wrapperspb.BoolValue, error) {
	caller, err := fieldAddress(in, "caller")
	if err != nil {
		return nil, err
	}
	index, err := fieldUint8(in, "index")
	if err != nil {
		return nil, err
	}
	domainID, err := fieldUint64(in, "domain_id")
	if err != nil {
		return nil, err
	}
	if err := s.Reg.SetDomain(caller, index, domainID); err != nil {
		return nil, mapErr(err)
	}
	return wrapperspb.Bool(true), nil
}

func (s *Server) FreezeDomain(ctx context.Context, in *structpb.Struct) (*wrapperspb.BoolValue, error) {
	caller, err := fieldAddress(in, "caller")
	if err != nil {
		return nil, err
	}
	index, err := fieldUint8(in, "index")
	if err != nil {
		return nil, err
	}
	if err := s.Reg.FreezeDomain(caller, index); err != nil {
		return nil, mapErr(err)
	}
	return wrapperspb.Bool(true), nil
}

func (s *Server) TransferOwnership(ctx context.Context, in *structpb.Struct) (*wrapperspb.BoolValue, error) {
	caller, err := fieldAddress(in, "caller")
	if err != nil {
		return nil, err
	}
	newOwner, err := fieldAddress(in, "new_owner")
	if err != nil {
		return nil, err
	}
	if err := s.Reg.TransferOwnership(caller, newOwner); err != nil {
		return nil, mapErr(err)
	}
	return wrapperspb.Bool(true), nil
}

func (s *Server) GetProvider(ctx context.Context, in *structpb.Struct) (*wrapperspb.StringValue, error) {
	id, err := fieldUint8(in, "id")
	if err != nil {
		return nil, err
	}
	loc, err := s.Reg.Provider(id)
	if err != nil {
		return nil, mapErr(err)
	}
	return wrapperspb.String(loc.String()), nil
}

func (s *Server) GetDomain(ctx context.Context, in *structpb.Struct) (*wrapperspb.StringValue, error) {
	index, err := fieldUint8(in, "index")
	if err != nil {
		return nil, err
	}
	domainID, err := s.Reg.Domain(index)
	if err != nil {
		return nil, mapErr(err)
	}
	return wrapperspb.String(strconv.FormatUint(domainID, 10)), nil
}

func (s *Server) Owner(ctx context.Context, in *structpb.Struct) (*wrapperspb.StringValue, error) {
	return wrapperspb.String(s.Reg.Owner().String()), nil
}

func fieldString(in *structpb.Struct, key string) (string, error) {
	v, ok := in.GetFields()[key]
	if !ok {
		return "", status.Errorf(codes.InvalidArgument, "missing field %q", key)
	}
	return v.GetStringValue(), nil
}

func fieldAddress(in *structpb.Struct, key string) (model.Address, error) {
	s, err := fieldString(in, key)
	if err != nil {
		return model.ZeroAddress, err
	}
	a, err := model.ParseAddress(s)
	if err != nil {
		return model.ZeroAddress, status.Errorf(codes.InvalidArgument, "field %q: %v", key, err)
	}
	return a, nil
}

func fieldDigest(in *structpb.Struct, key string) (model.Digest, error) {
	s, err := fieldString(in, key)
	if err != nil {
		return model.Digest{}, err
	}
	d, err := model.ParseDigest(s)
	if err != nil {
		return model.Digest{}, status.Errorf(codes.InvalidArgument, "field %q: %v", key, err)
	}
	return d, nil
}

func fieldUint64(in *structpb.Struct, key string) (uint64, error) {
	s, err := fieldString(in, key)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, status.Errorf(codes.InvalidArgument, "field %q: %v", key, err)
	}
	return n, nil
}

func fieldUint8(in *structpb.Struct, key string) (uint8, error) {
	n, err := fieldUint64(in, key)
	if err != nil {
		return 0, err
	}
	if n > 255 {
		return 0, status.Errorf(codes.InvalidArgument, "field %q exceeds uint8", key)
	}
	return uint8(n), nil
}

func fieldBig(in *structpb.Struct, key string) (*big.Int, error) {
	s, err := fieldString(in, key)
	if err != nil {
		return nil, err
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok || v.Sign() < 0 {
		return nil, status.Errorf(codes.InvalidArgument, "field %q is not a non-negative integer", key)
	}
	return v, nil
}

// mapErr translates the engine's error taxonomy to gRPC status codes.
func mapErr(err error) error {
	if err == nil {
		return nil
	}
	var e *model.Error
	if errors.As(err, &e) {
		switch e.Kind {
		case model.KindAuth:
			return status.Error(codes.Unauthenticated, e.Error())
		case model.KindIntegrity:
			return status.Error(codes.InvalidArgument, e.Error())
		case model.KindLookup:
			return status.Error(codes.NotFound, e.Error())
		case model.KindProvider:
			return status.Error(codes.Aborted, e.Error())
		case model.KindAdmin:
			return status.Error(codes.PermissionDenied, e.Error())
		}
	}
	switch {
	case errors.Is(err, registry.ErrNotOwner):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, registry.ErrNotRegistered):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, registry.ErrFrozen),
		errors.Is(err, registry.ErrZeroDomain),
		errors.Is(err, registry.ErrZeroLocation),
		errors.Is(err, registry.ErrZeroOwner),
		errors.Is(err, registry.ErrLengthMismatch):
		return status.Error(codes.FailedPrecondition, err.Error())
	default:
		return status.Error(codes.Internal, fmt.Sprintf("internal: %v", err))
	}
}
