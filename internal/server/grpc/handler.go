package grpc

import (
	"context"
	"time"

	"github.com/dmitrijs2005/notevault/internal/api"
	pb "github.com/dmitrijs2005/notevault/internal/proto"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func timestamp(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

func fromTimestamp(ts *timestamppb.Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}
	return ts.AsTime()
}

func loginResponse(r *api.LoginResponse) *pb.LoginResponse {
	return &pb.LoginResponse{
		AccountId:                 r.AccountID,
		Username:                  r.Username,
		EncryptionSalt:            r.E2EESalt,
		PassphraseVerifierSalt:    r.PassphraseVerifierSalt,
		PassphraseVerifierVersion: int32(r.PassphraseVerifierVersion),
		SessionToken:              r.SessionToken,
	}
}

func okResponse(r *api.OKResponse) *pb.OKResponse {
	return &pb.OKResponse{Ok: r.OK, SessionToken: r.SessionToken}
}

func wrappedDEKResponse(r *api.WrappedDEKResponse) *pb.WrappedDekResponse {
	return &pb.WrappedDekResponse{
		WrappedDek:   r.WrappedDEK,
		WrapNonce:    r.WrapNonce,
		Version:      int32(r.Version),
		SessionToken: r.SessionToken,
	}
}

func preferencesResponse(r *api.PreferencesResponse) *pb.PreferencesResponse {
	return &pb.PreferencesResponse{AuthMethod: r.AuthMethod, TotpEnabled: r.TOTPEnabled, SessionToken: r.SessionToken}
}

func sessionRequest(req *pb.SessionRequest) *api.SessionRequest {
	return &api.SessionRequest{SessionToken: req.GetSessionToken()}
}

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {
	resp, err := s.api.Register(ctx, &api.RegisterRequest{
		Username:                  req.GetUsername(),
		Email:                     req.GetEmail(),
		EnableTOTP:                req.GetEnableTotp(),
		PassphraseVerifier:        req.GetPassphraseVerifier(),
		PassphraseVerifierSalt:    req.GetPassphraseVerifierSalt(),
		PassphraseVerifierVersion: int(req.GetPassphraseVerifierVersion()),
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "Registered", "account_id", resp.AccountID)
	return &pb.RegisterResponse{
		AccountId:      resp.AccountID,
		EncryptionSalt: resp.E2EESalt,
		SessionToken:   resp.SessionToken,
		TotpSecret:     resp.TOTPSecret,
		TotpUri:        resp.TOTPURI,
	}, nil
}

func (s *GRPCServer) RequestLoginLink(ctx context.Context, req *pb.RequestLoginLinkRequest) (*pb.RequestLoginLinkResponse, error) {
	resp, err := s.api.RequestLoginLink(ctx, &api.RequestLoginLinkRequest{Email: req.GetEmail()})
	if err != nil {
		return nil, err
	}
	return &pb.RequestLoginLinkResponse{ExpiresAt: timestamp(resp.ExpiresAt)}, nil
}

func (s *GRPCServer) VerifyLoginLink(ctx context.Context, req *pb.VerifyLoginLinkRequest) (*pb.LoginResponse, error) {
	resp, err := s.api.VerifyLoginLink(ctx, &api.VerifyLoginLinkRequest{
		Email: req.GetEmail(),
		Token: req.GetToken(),
		Link:  req.GetLink(),
	})
	if err != nil {
		return nil, err
	}
	return loginResponse(resp), nil
}

func (s *GRPCServer) LoginWithCode(ctx context.Context, req *pb.LoginWithCodeRequest) (*pb.LoginResponse, error) {
	resp, err := s.api.LoginWithCode(ctx, &api.LoginWithCodeRequest{Username: req.GetUsername(), Code: req.GetCode()})
	if err != nil {
		return nil, err
	}
	return loginResponse(resp), nil
}

func (s *GRPCServer) StoreMasterWrappedDek(ctx context.Context, req *pb.StoreMasterWrappedDekRequest) (*pb.OKResponse, error) {
	resp, err := s.api.StoreMasterWrappedDEK(ctx, &api.StoreMasterWrappedDEKRequest{
		SessionToken:    req.GetSessionToken(),
		WrappedDEK:      req.GetWrappedDek(),
		WrapNonce:       req.GetWrapNonce(),
		Version:         int(req.GetVersion()),
		PassphraseProof: req.GetPassphraseProof(),
	})
	if err != nil {
		return nil, err
	}
	return okResponse(resp), nil
}

func (s *GRPCServer) FetchMasterWrappedDek(ctx context.Context, req *pb.SessionRequest) (*pb.WrappedDekResponse, error) {
	resp, err := s.api.FetchMasterWrappedDEK(ctx, sessionRequest(req))
	if err != nil {
		return nil, err
	}
	return wrappedDEKResponse(resp), nil
}

func (s *GRPCServer) UpdatePassphrase(ctx context.Context, req *pb.UpdatePassphraseRequest) (*pb.OKResponse, error) {
	resp, err := s.api.UpdatePassphrase(ctx, &api.UpdatePassphraseRequest{
		SessionToken:        req.GetSessionToken(),
		NewE2EESalt:         req.GetNewEncryptionSalt(),
		NewWrappedDEK:       req.GetNewWrappedDek(),
		NewWrapNonce:        req.GetNewWrapNonce(),
		Version:             int(req.GetVersion()),
		PassphraseProof:     req.GetPassphraseProof(),
		NextVerifier:        req.GetNextVerifier(),
		NextVerifierSalt:    req.GetNextVerifierSalt(),
		NextVerifierVersion: int(req.GetNextVerifierVersion()),
	})
	if err != nil {
		return nil, err
	}
	return okResponse(resp), nil
}

func (s *GRPCServer) RegisterDevice(ctx context.Context, req *pb.RegisterDeviceRequest) (*pb.RegisterDeviceResponse, error) {
	resp, err := s.api.RegisterDevice(ctx, &api.RegisterDeviceRequest{
		SessionToken: req.GetSessionToken(),
		DeviceID:     req.GetDeviceId(),
		WrappedDEK:   req.GetWrappedDek(),
		WrapNonce:    req.GetWrapNonce(),
		Version:      int(req.GetVersion()),
	})
	if err != nil {
		return nil, err
	}
	return &pb.RegisterDeviceResponse{DeviceId: resp.DeviceID, SessionToken: resp.SessionToken}, nil
}

func (s *GRPCServer) FetchWrappedDekForDevice(ctx context.Context, req *pb.FetchWrappedDekForDeviceRequest) (*pb.WrappedDekResponse, error) {
	resp, err := s.api.FetchWrappedDEKForDevice(ctx, &api.FetchWrappedDEKForDeviceRequest{
		SessionToken: req.GetSessionToken(),
		DeviceID:     req.GetDeviceId(),
	})
	if err != nil {
		return nil, err
	}
	return wrappedDEKResponse(resp), nil
}

func (s *GRPCServer) RevokeSession(ctx context.Context, req *pb.SessionRequest) (*pb.OKResponse, error) {
	resp, err := s.api.RevokeSession(ctx, sessionRequest(req))
	if err != nil {
		return nil, err
	}
	return okResponse(resp), nil
}

func (s *GRPCServer) CreateNote(ctx context.Context, req *pb.CreateNoteRequest) (*pb.OKResponse, error) {
	resp, err := s.api.CreateNote(ctx, &api.CreateNoteRequest{
		SessionToken: req.GetSessionToken(),
		ClientNoteID: req.GetClientNoteId(),
		Ciphertext:   req.GetCiphertext(),
		Nonce:        req.GetNonce(),
		AAD:          req.GetAad(),
		Version:      int(req.GetVersion()),
		CreatedAt:    fromTimestamp(req.GetCreatedAt()),
	})
	if err != nil {
		return nil, err
	}
	return okResponse(resp), nil
}

func (s *GRPCServer) ListNotes(ctx context.Context, req *pb.SessionRequest) (*pb.ListNotesResponse, error) {
	resp, err := s.api.ListNotes(ctx, sessionRequest(req))
	if err != nil {
		return nil, err
	}

	notes := make([]*pb.Note, 0, len(resp.Notes))
	for _, n := range resp.Notes {
		notes = append(notes, &pb.Note{
			Id:         n.ID,
			Ciphertext: n.Ciphertext,
			Nonce:      n.Nonce,
			Aad:        n.AAD,
			Version:    int32(n.Version),
			CreatedAt:  timestamp(n.CreatedAt),
		})
	}
	return &pb.ListNotesResponse{Notes: notes, SessionToken: resp.SessionToken}, nil
}

func (s *GRPCServer) GetPreferences(ctx context.Context, req *pb.SessionRequest) (*pb.PreferencesResponse, error) {
	resp, err := s.api.GetPreferences(ctx, sessionRequest(req))
	if err != nil {
		return nil, err
	}
	return preferencesResponse(resp), nil
}

func (s *GRPCServer) UpdatePreferences(ctx context.Context, req *pb.UpdatePreferencesRequest) (*pb.PreferencesResponse, error) {
	resp, err := s.api.UpdatePreferences(ctx, &api.UpdatePreferencesRequest{
		SessionToken: req.GetSessionToken(),
		AuthMethod:   req.GetAuthMethod(),
	})
	if err != nil {
		return nil, err
	}
	return preferencesResponse(resp), nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {
	resp, err := s.api.Ping(ctx, &api.PingRequest{})
	if err != nil {
		return nil, err
	}
	return &pb.PingResponse{Status: resp.Status}, nil
}
